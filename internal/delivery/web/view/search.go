package view

import (
	"strconv"
	"strings"

	"ratesmart/internal/delivery/api/dto"
)

// MaxSuggestions caps the typeahead list of the search page.
const MaxSuggestions = 5

// FilterBusinesses keeps businesses whose name contains term, ignoring case.
// An empty term keeps everything.
func FilterBusinesses(businesses []dto.Business, term string) []dto.Business {
	needle := strings.ToLower(term)
	out := make([]dto.Business, 0, len(businesses))
	for _, b := range businesses {
		if strings.Contains(strings.ToLower(b.Name), needle) {
			out = append(out, b)
		}
	}

	return out
}

// Suggest returns at most MaxSuggestions matches for a typed term. A blank
// term suggests nothing.
func Suggest(businesses []dto.Business, term string) []dto.Business {
	if strings.TrimSpace(term) == "" {
		return nil
	}

	matches := FilterBusinesses(businesses, term)
	if len(matches) > MaxSuggestions {
		matches = matches[:MaxSuggestions]
	}

	return matches
}

// FindExact returns the first business whose name equals term, ignoring case.
func FindExact(businesses []dto.Business, term string) (dto.Business, bool) {
	for _, b := range businesses {
		if strings.EqualFold(b.Name, term) {
			return b, true
		}
	}

	return dto.Business{}, false
}

// FilterReviewsByBusinessName is the admin review search.
func FilterReviewsByBusinessName(reviews []dto.Review, term string) []dto.Review {
	needle := strings.ToLower(term)
	out := make([]dto.Review, 0, len(reviews))
	for _, r := range reviews {
		if strings.Contains(strings.ToLower(r.BusinessName), needle) {
			out = append(out, r)
		}
	}

	return out
}

// Has-reply filter values.
const (
	ReplyAny = ""
	ReplyYes = "yes"
	ReplyNo  = "no"
)

// ReviewFilter is the dashboard review filter. Empty fields match anything.
type ReviewFilter struct {
	Rating    string `query:"rating"`
	Sentiment string `query:"sentiment"`
	HasReply  string `query:"has_reply"`
	ProductID string `query:"product"`
}

// Matches reports whether r passes every set criterion.
func (f ReviewFilter) Matches(r dto.Review) bool {
	if f.Rating != "" && strconv.Itoa(r.Rating) != f.Rating {
		return false
	}
	if f.Sentiment != "" && string(r.Sentiment) != f.Sentiment {
		return false
	}
	if f.ProductID != "" && r.Product.String() != f.ProductID {
		return false
	}

	replied := strings.TrimSpace(r.Reply) != ""
	switch f.HasReply {
	case ReplyYes:
		return replied
	case ReplyNo:
		return !replied
	default:
		return true
	}
}

// FilterReviews applies f keeping the input order.
func FilterReviews(reviews []dto.Review, f ReviewFilter) []dto.Review {
	out := make([]dto.Review, 0, len(reviews))
	for _, r := range reviews {
		if f.Matches(r) {
			out = append(out, r)
		}
	}

	return out
}
