package inquiry

import "strings"

// FilterAll matches every status.
const FilterAll = "all"

// Filter is the admin view's read-time projection. An inquiry is kept when
// its status equals the filter (skipped for "all" or empty) and any of email,
// first name, last name or pickup street contains the search term,
// case-insensitively (skipped for an empty term).
func Filter(list []Inquiry, status, term string) []Inquiry {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]Inquiry, 0, len(list))
	for _, inq := range list {
		if status != "" && status != FilterAll && string(inq.Status) != status {
			continue
		}
		if term != "" && !matchesTerm(&inq, term) {
			continue
		}
		out = append(out, inq)
	}
	return out
}

func matchesTerm(inq *Inquiry, term string) bool {
	fields := []string{
		inq.Form.Contact.Email,
		inq.Form.Contact.FirstName,
		inq.Form.Contact.LastName,
	}
	if addr := inq.Form.Pickup(); addr != nil {
		fields = append(fields, addr.Street)
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
