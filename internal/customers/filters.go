package customers

import "net/url"

// Filters contains the recognized customer list predicates. Anything else
// a caller might want to filter by is not forwarded to the API.
type Filters struct {
	Status *Status
	Search *string
}

func (f Filters) apply(query url.Values) {
	if f.Status != nil {
		query.Set("status", string(*f.Status))
	}
	if f.Search != nil && *f.Search != "" {
		query.Set("search", *f.Search)
	}
}
