package inquiry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"loadup-backend/internal/model"
)

func filterFixture() []Inquiry {
	mk := func(status Status, first, last, email, street string) Inquiry {
		return Inquiry{
			ID:     email,
			Status: status,
			Form: model.Form{
				Service: model.ServiceUmzug,
				Umzug: &model.UmzugDetails{
					Pickup: model.Address{Street: street, Zip: "10115"},
				},
				Contact: model.Contact{
					FirstName: first,
					LastName:  last,
					Email:     email,
					Phone:     "0152",
				},
			},
		}
	}
	return []Inquiry{
		mk(StatusNew, "Max", "Mustermann", "max@example.de", "Hauptstraße 5"),
		mk(StatusContacted, "Erika", "Schmidt", "erika@example.de", "Nebenweg 12"),
		mk(StatusCompleted, "Hans", "Meyer", "hans@example.de", "Ringstraße 3"),
		mk(StatusNew, "Anna", "Weber", "anna@example.de", "Hauptstraße 9"),
	}
}

func TestFilter_ByStatus(t *testing.T) {
	got := Filter(filterFixture(), "contacted", "")
	assert.Len(t, got, 1)
	assert.Equal(t, "erika@example.de", got[0].Form.Contact.Email)
}

func TestFilter_StatusWithIrrelevantTerm(t *testing.T) {
	// The status predicate holds regardless of the term matching other rows.
	got := Filter(filterFixture(), "contacted", "erika")
	assert.Len(t, got, 1)
	assert.Equal(t, StatusContacted, got[0].Status)
}

func TestFilter_AllWithNoMatch(t *testing.T) {
	got := Filter(filterFixture(), FilterAll, "no-such-customer")
	assert.Empty(t, got)
}

func TestFilter_TermIsCaseInsensitive(t *testing.T) {
	got := Filter(filterFixture(), FilterAll, "MUSTERMANN")
	assert.Len(t, got, 1)
	assert.Equal(t, "max@example.de", got[0].Form.Contact.Email)
}

func TestFilter_TermMatchesPickupStreet(t *testing.T) {
	got := Filter(filterFixture(), FilterAll, "hauptstraße")
	assert.Len(t, got, 2)
}

func TestFilter_StatusAndTermCombine(t *testing.T) {
	got := Filter(filterFixture(), "new", "hauptstraße")
	assert.Len(t, got, 2)
	got = Filter(filterFixture(), "completed", "hauptstraße")
	assert.Empty(t, got)
}

func TestFilter_EmptyInputs(t *testing.T) {
	all := Filter(filterFixture(), "", "")
	assert.Len(t, all, 4)
	assert.Empty(t, Filter(nil, FilterAll, ""))
}
