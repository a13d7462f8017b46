// Package model defines the questionnaire form shapes and the enumerations
// they branch on.
package model

import "regexp"

// ServiceType selects which questionnaire flow the customer walks through.
type ServiceType string

const (
	ServiceUmzug      ServiceType = "umzug"
	ServiceTransport  ServiceType = "transport"
	ServiceEntsorgung ServiceType = "entsorgung"
)

// Valid reports whether the service type is one of the three offered flows.
func (s ServiceType) Valid() bool {
	switch s {
	case ServiceUmzug, ServiceTransport, ServiceEntsorgung:
		return true
	}
	return false
}

// UmzugType is the sub-category of a moving request.
type UmzugType string

const (
	UmzugPrivat        UmzugType = "privat"
	UmzugGeschaeftlich UmzugType = "geschaeftlich"
)

func (t UmzugType) Valid() bool {
	return t == UmzugPrivat || t == UmzugGeschaeftlich
}

// TransportType is the sub-category of a transport request.
type TransportType string

const (
	TransportMoebel    TransportType = "mobel"
	TransportWaren     TransportType = "waren"
	TransportSonstiges TransportType = "sonstiges"
)

func (t TransportType) Valid() bool {
	switch t {
	case TransportMoebel, TransportWaren, TransportSonstiges:
		return true
	}
	return false
}

// EntsorgungType is the sub-category of a disposal request.
type EntsorgungType string

const (
	EntsorgungSperrmuell          EntsorgungType = "sperrmull"
	EntsorgungHaushaltsaufloesung EntsorgungType = "haushaltsauflosung"
	EntsorgungBauschutt           EntsorgungType = "bauschutt"
	EntsorgungGartenabfall        EntsorgungType = "gartenabfall"
	EntsorgungElektro             EntsorgungType = "elektro"
	EntsorgungSonstiges           EntsorgungType = "sonstiges"
)

func (t EntsorgungType) Valid() bool {
	switch t {
	case EntsorgungSperrmuell, EntsorgungHaushaltsaufloesung, EntsorgungBauschutt,
		EntsorgungGartenabfall, EntsorgungElektro, EntsorgungSonstiges:
		return true
	}
	return false
}

// DateType distinguishes a fixed move date from a flexible one.
type DateType string

const (
	DateFixed    DateType = "fixed"
	DateFlexible DateType = "flexible"
)

// PropertyType describes ownership of the property at an address.
type PropertyType string

const (
	PropertyEigenheim   PropertyType = "eigenheim"
	PropertyMietwohnung PropertyType = "mietwohnung"
)

// Address describes one end of a pickup or delivery.
type Address struct {
	Street   string `json:"street"`
	Zip      string `json:"zip"`
	City     string `json:"city,omitempty"`
	Floor    string `json:"floor,omitempty"`
	Elevator bool   `json:"elevator,omitempty"`
}

// Schedule captures the customer's preferred date.
type Schedule struct {
	DateType DateType `json:"dateType,omitempty"`
	MoveDate string   `json:"moveDate,omitempty"`
}

// Contact is the block collected on the final questionnaire step.
type Contact struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,emailformat"`
	Phone     string `json:"phone" validate:"required"`
}

// UmzugDetails is the variant payload of a moving request.
type UmzugDetails struct {
	Type                    UmzugType    `json:"type"`
	Pickup                  Address      `json:"pickup"`
	Destination             Address      `json:"destination"`
	PropertyType            PropertyType `json:"propertyType,omitempty"`
	DestinationPropertyType PropertyType `json:"destinationPropertyType,omitempty"`
	LivingSpace             string       `json:"livingSpace"`
	Rooms                   string       `json:"rooms"`
	NeedsPacking            bool         `json:"needsPacking"`
	NeedsStorage            bool         `json:"needsStorage"`
	NeedsCleaning           bool         `json:"needsCleaning"`
}

// TransportDetails is the variant payload of a transport request.
type TransportDetails struct {
	Type        TransportType `json:"type"`
	Pickup      Address       `json:"pickup"`
	Destination Address       `json:"destination"`
	Items       string        `json:"items"`
	Weight      string        `json:"weight,omitempty"`
}

// EntsorgungDetails is the variant payload of a disposal request.
type EntsorgungDetails struct {
	Type        EntsorgungType `json:"type"`
	Pickup      Address        `json:"pickup"`
	WasteAmount string         `json:"wasteAmount"`
}

// Form is the accumulated questionnaire state. It is a tagged union: Service
// decides which of the three variant payloads is populated, the remaining
// fields are the common envelope shared by every flow.
type Form struct {
	Service    ServiceType        `json:"serviceType"`
	Umzug      *UmzugDetails      `json:"umzug,omitempty"`
	Transport  *TransportDetails  `json:"transport,omitempty"`
	Entsorgung *EntsorgungDetails `json:"entsorgung,omitempty"`

	Schedule       Schedule `json:"schedule"`
	AdditionalInfo string   `json:"additionalInfo,omitempty"`
	Images         []string `json:"images"`
	Contact        Contact  `json:"contact"`
}

// Pickup returns the pickup address of the active variant, or nil when no
// variant payload exists yet.
func (f *Form) Pickup() *Address {
	switch f.Service {
	case ServiceUmzug:
		if f.Umzug != nil {
			return &f.Umzug.Pickup
		}
	case ServiceTransport:
		if f.Transport != nil {
			return &f.Transport.Pickup
		}
	case ServiceEntsorgung:
		if f.Entsorgung != nil {
			return &f.Entsorgung.Pickup
		}
	}
	return nil
}

// Destination returns the destination address of the active variant. Disposal
// has none.
func (f *Form) Destination() *Address {
	switch f.Service {
	case ServiceUmzug:
		if f.Umzug != nil {
			return &f.Umzug.Destination
		}
	case ServiceTransport:
		if f.Transport != nil {
			return &f.Transport.Destination
		}
	}
	return nil
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether the address matches the local@domain.tld shape
// the contact step accepts.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
