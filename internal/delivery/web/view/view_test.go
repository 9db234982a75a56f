package view

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"ratesmart/internal/delivery/api/dto"
	"ratesmart/internal/domain/entity"
)

func validSignupForm() SignupForm {
	return SignupForm{
		Name:            "Mama Put",
		Phone:           "+234 800 000 0000",
		Email:           "hello@mamaput.ng",
		Country:         "Nigeria",
		State:           "Lagos",
		Hours:           "9am - 9pm",
		Description:     "Jollof and more",
		Password:        "Secret123",
		ConfirmPassword: "Secret123",
	}
}

func TestValidateSignup(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SignupForm)
		want   string
	}{
		{name: "valid", mutate: func(*SignupForm) {}, want: ""},
		{name: "missing name", mutate: func(f *SignupForm) { f.Name = "" }, want: MsgFillAllFields},
		{name: "missing description", mutate: func(f *SignupForm) { f.Description = "" }, want: MsgFillAllFields},
		{name: "missing confirmation", mutate: func(f *SignupForm) { f.ConfirmPassword = "" }, want: MsgFillAllFields},
		{name: "mismatch", mutate: func(f *SignupForm) { f.ConfirmPassword = "Secret124" }, want: MsgPasswordMismatch},
		{name: "mismatch wins over weak", mutate: func(f *SignupForm) { f.Password = "weak"; f.ConfirmPassword = "other" }, want: MsgPasswordMismatch},
		{name: "too short", mutate: func(f *SignupForm) { f.Password = "Sec123"; f.ConfirmPassword = "Sec123" }, want: MsgWeakPassword},
		{name: "no uppercase", mutate: func(f *SignupForm) { f.Password = "secret123"; f.ConfirmPassword = "secret123" }, want: MsgWeakPassword},
		{name: "no digit", mutate: func(f *SignupForm) { f.Password = "SecretPass"; f.ConfirmPassword = "SecretPass" }, want: MsgWeakPassword},
		{name: "seven characters in more bytes", mutate: func(f *SignupForm) { f.Password = "Ab1éééé"; f.ConfirmPassword = "Ab1éééé" }, want: MsgWeakPassword},
		{name: "eight characters with accents", mutate: func(f *SignupForm) { f.Password = "Ab1ééééé"; f.ConfirmPassword = "Ab1ééééé" }, want: ""},
		{name: "non-ascii uppercase only", mutate: func(f *SignupForm) { f.Password = "ÉÉÉÉÉÉÉ1"; f.ConfirmPassword = "ÉÉÉÉÉÉÉ1" }, want: MsgWeakPassword},
		{name: "non-ascii digit only", mutate: func(f *SignupForm) { f.Password = "Secretpass٣"; f.ConfirmPassword = "Secretpass٣" }, want: MsgWeakPassword},
		{name: "email without dot", mutate: func(f *SignupForm) { f.Email = "hello@mamaput" }, want: MsgInvalidEmail},
		{name: "email with space", mutate: func(f *SignupForm) { f.Email = "hello @mamaput.ng" }, want: MsgInvalidEmail},
		{name: "state of another country", mutate: func(f *SignupForm) { f.State = "Accra" }, want: MsgInvalidState},
		{name: "unknown country", mutate: func(f *SignupForm) { f.Country = "Atlantis" }, want: MsgInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validSignupForm()
			tt.mutate(&form)
			assert.Equal(t, tt.want, ValidateSignup(form))
		})
	}
}

func TestCountriesAndStates(t *testing.T) {
	assert.Equal(t, []string{"Ghana", "Kenya", "Nigeria"}, Countries())
	for _, country := range Countries() {
		assert.Len(t, States(country), 5, country)
	}
	assert.Equal(t, []string{"Nairobi", "Mombasa", "Kisumu", "Nakuru", "Eldoret"}, States("Kenya"))
	assert.Nil(t, States("Atlantis"))

	// Callers cannot mutate the table.
	States("Ghana")[0] = "changed"
	assert.Equal(t, "Accra", States("Ghana")[0])
}

func businesses(names ...string) []dto.Business {
	out := make([]dto.Business, 0, len(names))
	for _, name := range names {
		out = append(out, dto.Business{ID: uuid.New(), Name: name})
	}

	return out
}

func names(bs []dto.Business) []string {
	out := make([]string, 0, len(bs))
	for _, b := range bs {
		out = append(out, b.Name)
	}

	return out
}

func TestSuggest(t *testing.T) {
	all := businesses("Kofi Bakes", "Bakery Lagos", "bake house", "Nairobi Grill", "BAKERS", "Bakewell", "Oven Bake")

	got := Suggest(all, "bake")
	if diff := cmp.Diff([]string{"Kofi Bakes", "Bakery Lagos", "bake house", "BAKERS", "Bakewell"}, names(got)); diff != "" {
		t.Errorf("Suggest mismatch (-want +got):\n%s", diff)
	}

	assert.Empty(t, Suggest(all, "   "))
	assert.Empty(t, Suggest(all, "sushi"))
	assert.Equal(t, []string{"Nairobi Grill"}, names(Suggest(all, "GRILL")))
}

func TestFilterBusinesses_EmptyTermKeepsAll(t *testing.T) {
	all := businesses("A", "B")
	assert.Equal(t, names(all), names(FilterBusinesses(all, "")))
}

func TestFindExact(t *testing.T) {
	all := businesses("Kofi Bakes", "Kofi Bakes Annex")

	match, ok := FindExact(all, "kofi bakes")
	assert.True(t, ok)
	assert.Equal(t, all[0].ID, match.ID)

	_, ok = FindExact(all, "kofi")
	assert.False(t, ok)
}

func reviewsWithRatings(ratings ...int) []dto.Review {
	out := make([]dto.Review, 0, len(ratings))
	for _, rating := range ratings {
		out = append(out, dto.Review{ID: uuid.New(), Rating: rating})
	}

	return out
}

func TestDistribution(t *testing.T) {
	reviews := reviewsWithRatings(5, 5, 4, 1)

	want := []DistributionRow{
		{Stars: 5, Count: 2, Percent: 50},
		{Stars: 4, Count: 1, Percent: 25},
		{Stars: 3, Count: 0, Percent: 0},
		{Stars: 2, Count: 0, Percent: 0},
		{Stars: 1, Count: 1, Percent: 25},
	}
	if diff := cmp.Diff(want, Distribution(reviews), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Distribution mismatch (-want +got):\n%s", diff)
	}
}

func TestDistribution_SumsToTotal(t *testing.T) {
	for _, reviews := range [][]dto.Review{
		nil,
		reviewsWithRatings(3),
		reviewsWithRatings(1, 2, 3, 4, 5, 5, 5, 2),
	} {
		total := 0
		for _, row := range Distribution(reviews) {
			total += row.Count
		}
		assert.Equal(t, len(reviews), total)
	}
}

func TestAverageRating(t *testing.T) {
	avg, ok := AverageRating(reviewsWithRatings(5, 4, 4))
	assert.True(t, ok)
	assert.InDelta(t, 4.3, avg, 1e-9)

	_, ok = AverageRating(nil)
	assert.False(t, ok)

	assert.Equal(t, "4.3", FormatAverage(reviewsWithRatings(5, 4, 4), "N/A"))
	assert.Equal(t, "2.0", FormatAverage(reviewsWithRatings(1, 3), "N/A"))
	assert.Equal(t, "N/A", FormatAverage(nil, "N/A"))
}

func TestSummarize(t *testing.T) {
	reviews := []dto.Review{
		{Rating: 5, Sentiment: entity.SentimentPositive},
		{Rating: 4, Sentiment: entity.SentimentPositive, IsFake: true},
		{Rating: 2, Sentiment: entity.SentimentNegative},
		{Rating: 3, Sentiment: entity.SentimentNeutral, IsFake: true},
	}

	want := Stats{Total: 4, Average: "3.5", Fake: 2, Positive: 2, Neutral: 1, Negative: 1}
	if diff := cmp.Diff(want, Summarize(reviews)); diff != "" {
		t.Errorf("Summarize mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, CountFake(reviews))
	assert.Equal(t, Stats{Average: "0"}, Summarize(nil))
}

func TestFilterReviews(t *testing.T) {
	productA, productB := uuid.New(), uuid.New()
	reviews := []dto.Review{
		{CustomerName: "ada", Product: productA, Rating: 5, Sentiment: entity.SentimentPositive, Reply: "Thanks"},
		{CustomerName: "bola", Product: productA, Rating: 1, Sentiment: entity.SentimentNegative},
		{CustomerName: "chidi", Product: productB, Rating: 5, Sentiment: entity.SentimentNeutral, Reply: "  "},
	}
	customers := func(rs []dto.Review) []string {
		out := make([]string, 0, len(rs))
		for _, r := range rs {
			out = append(out, r.CustomerName)
		}

		return out
	}

	tests := []struct {
		name   string
		filter ReviewFilter
		want   []string
	}{
		{name: "no filter", filter: ReviewFilter{}, want: []string{"ada", "bola", "chidi"}},
		{name: "rating", filter: ReviewFilter{Rating: "5"}, want: []string{"ada", "chidi"}},
		{name: "sentiment", filter: ReviewFilter{Sentiment: "negative"}, want: []string{"bola"}},
		{name: "has reply", filter: ReviewFilter{HasReply: ReplyYes}, want: []string{"ada"}},
		{name: "no reply ignores blank", filter: ReviewFilter{HasReply: ReplyNo}, want: []string{"bola", "chidi"}},
		{name: "product", filter: ReviewFilter{ProductID: productB.String()}, want: []string{"chidi"}},
		{name: "combined", filter: ReviewFilter{ProductID: productA.String(), Rating: "5"}, want: []string{"ada"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, customers(FilterReviews(reviews, tt.filter))); diff != "" {
				t.Errorf("FilterReviews mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterReviewsByBusinessName(t *testing.T) {
	reviews := []dto.Review{{BusinessName: "Kofi Bakes"}, {BusinessName: "Nairobi Grill"}}

	got := FilterReviewsByBusinessName(reviews, "KOFI")
	assert.Len(t, got, 1)
	assert.Equal(t, "Kofi Bakes", got[0].BusinessName)
	assert.Len(t, FilterReviewsByBusinessName(reviews, ""), 2)
}
