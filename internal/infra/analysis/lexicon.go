package analysis

var negations = map[string]bool{
	"not": true, "no": true, "never": true, "don't": true, "didn't": true,
	"doesn't": true, "isn't": true, "wasn't": true, "aren't": true,
	"weren't": true, "won't": true, "can't": true, "couldn't": true,
	"nothing": true, "hardly": true,
}

var intensifiers = map[string]float64{
	"very": 1.3, "really": 1.3, "extremely": 1.5, "so": 1.2, "super": 1.3,
	"totally": 1.3, "absolutely": 1.4, "quite": 1.1, "too": 1.2,
	"slightly": 0.5, "somewhat": 0.6, "barely": 0.4,
}

// lexicon maps opinion words to a polarity in [-1, 1].
var lexicon = map[string]float64{
	// positive
	"good": 0.7, "great": 0.8, "excellent": 1.0, "amazing": 0.6, "awesome": 1.0,
	"fantastic": 0.4, "wonderful": 1.0, "perfect": 1.0, "best": 1.0, "love": 0.5,
	"loved": 0.7, "lovely": 0.5, "nice": 0.6, "happy": 0.8, "pleased": 0.5,
	"satisfied": 0.5, "friendly": 0.4, "helpful": 0.5, "fast": 0.2, "quick": 0.33,
	"clean": 0.37, "fresh": 0.3, "delicious": 1.0, "tasty": 0.5, "recommend": 0.5,
	"recommended": 0.5, "beautiful": 0.85, "brilliant": 0.9, "superb": 1.0,
	"outstanding": 0.5, "impressive": 1.0, "reliable": 0.4, "affordable": 0.4,
	"polite": 0.3, "professional": 0.1, "smooth": 0.4, "enjoyed": 0.4, "fine": 0.42,
	"better": 0.5, "cool": 0.35, "comfortable": 0.4, "worth": 0.3, "easy": 0.43,
	"thanks": 0.2, "thank": 0.2, "glad": 0.5, "exceptional": 0.67,
	// negative
	"bad": -0.7, "terrible": -1.0, "awful": -1.0, "horrible": -1.0, "worst": -1.0,
	"poor": -0.4, "disappointing": -0.6, "disappointed": -0.75, "hate": -0.8,
	"hated": -0.9, "rude": -0.3, "slow": -0.3, "dirty": -0.6, "expensive": -0.5,
	"overpriced": -0.5, "broken": -0.4, "cold": -0.6, "stale": -0.5, "late": -0.3,
	"useless": -0.5, "unhelpful": -0.5, "wrong": -0.5, "sad": -0.5, "angry": -0.5,
	"unacceptable": -0.6, "nasty": -1.0, "boring": -1.0, "disgusting": -1.0,
	"unfriendly": -0.4, "never": -0.1, "problem": -0.2, "problems": -0.2,
	"waste": -0.2, "annoying": -0.8, "mediocre": -0.4, "bland": -0.4, "worse": -0.4,
	"fake": -0.5, "scam": -0.8, "avoid": -0.4, "refund": -0.2, "dangerous": -0.6,
}
