package models

import "time"

// AidType discriminates the two aid request variants
type AidType string

const (
	AidTypeMedical   AidType = "medical"
	AidTypeTransport AidType = "transport"
)

// Valid reports whether t is a known aid type
func (t AidType) Valid() bool {
	return t == AidTypeMedical || t == AidTypeTransport
}

// Urgency represents how quickly an aid request must be handled
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// AidStatus represents the lifecycle of an aid request
type AidStatus string

const (
	AidStatusPending    AidStatus = "pending"
	AidStatusAssigned   AidStatus = "assigned"
	AidStatusInProgress AidStatus = "in-progress"
	AidStatusCompleted  AidStatus = "completed"
	AidStatusCancelled  AidStatus = "cancelled"
)

// AidRequest is implemented by every aid request variant
type AidRequest interface {
	AidID() string
	Kind() AidType
}

// MedicalAid is a request for medical help at a place
type MedicalAid struct {
	ID                string       `json:"id"`
	PatientName       string       `json:"patientName"`
	Condition         string       `json:"condition"`
	Location          string       `json:"location"`
	Coordinates       *Coordinates `json:"coordinates,omitempty"`
	ContactNumber     string       `json:"contactNumber"`
	Urgency           Urgency      `json:"urgency"`
	AdditionalInfo    string       `json:"additionalInfo,omitempty"`
	Status            AidStatus    `json:"status"`
	AssignedVolunteer *string      `json:"assignedVolunteer,omitempty"`
	CreatedAt         time.Time    `json:"createdAt"`
}

func (m *MedicalAid) AidID() string { return m.ID }
func (m *MedicalAid) Kind() AidType { return AidTypeMedical }

// TransportAid is a request to move people from a pickup to a dropoff place
type TransportAid struct {
	ID                  string       `json:"id"`
	RequestorName       string       `json:"requestorName"`
	PickupLocation      string       `json:"pickupLocation"`
	PickupCoordinates   *Coordinates `json:"pickupCoordinates,omitempty"`
	DropoffLocation     string       `json:"dropoffLocation"`
	DropoffCoordinates  *Coordinates `json:"dropoffCoordinates,omitempty"`
	ContactNumber       string       `json:"contactNumber"`
	NumPassengers       int          `json:"numPassengers"`
	Urgency             Urgency      `json:"urgency"`
	SpecialRequirements string       `json:"specialRequirements,omitempty"`
	Status              AidStatus    `json:"status"`
	AssignedVolunteer   *string      `json:"assignedVolunteer,omitempty"`
	CreatedAt           time.Time    `json:"createdAt"`
}

func (t *TransportAid) AidID() string { return t.ID }
func (t *TransportAid) Kind() AidType { return AidTypeTransport }

// MedicalAidDTO flattens MedicalAid for database operations
type MedicalAidDTO struct {
	ID                string    `db:"id"`
	PatientName       string    `db:"patient_name"`
	Condition         string    `db:"condition"`
	Location          string    `db:"location"`
	Lat               *float64  `db:"lat"`
	Lng               *float64  `db:"lng"`
	ContactNumber     string    `db:"contact_number"`
	Urgency           Urgency   `db:"urgency"`
	AdditionalInfo    string    `db:"additional_info"`
	Status            AidStatus `db:"status"`
	AssignedVolunteer *string   `db:"assigned_volunteer"`
	CreatedAt         time.Time `db:"created_at"`
}

// ToDTO converts a MedicalAid to a MedicalAidDTO
func (m *MedicalAid) ToDTO() *MedicalAidDTO {
	dto := &MedicalAidDTO{
		ID:                m.ID,
		PatientName:       m.PatientName,
		Condition:         m.Condition,
		Location:          m.Location,
		ContactNumber:     m.ContactNumber,
		Urgency:           m.Urgency,
		AdditionalInfo:    m.AdditionalInfo,
		Status:            m.Status,
		AssignedVolunteer: m.AssignedVolunteer,
		CreatedAt:         m.CreatedAt,
	}
	if lat, lng, ok := m.Coordinates.LatLng(); ok {
		dto.Lat, dto.Lng = &lat, &lng
	}
	return dto
}

// ToMedicalAid converts a MedicalAidDTO back to a MedicalAid
func (d *MedicalAidDTO) ToMedicalAid() *MedicalAid {
	m := &MedicalAid{
		ID:                d.ID,
		PatientName:       d.PatientName,
		Condition:         d.Condition,
		Location:          d.Location,
		ContactNumber:     d.ContactNumber,
		Urgency:           d.Urgency,
		AdditionalInfo:    d.AdditionalInfo,
		Status:            d.Status,
		AssignedVolunteer: d.AssignedVolunteer,
		CreatedAt:         d.CreatedAt,
	}
	if d.Lat != nil && d.Lng != nil {
		m.Coordinates = &Coordinates{Lat: d.Lat, Lng: d.Lng}
	}
	return m
}

// TransportAidDTO flattens TransportAid for database operations
type TransportAidDTO struct {
	ID                  string    `db:"id"`
	RequestorName       string    `db:"requestor_name"`
	PickupLocation      string    `db:"pickup_location"`
	PickupLat           *float64  `db:"pickup_lat"`
	PickupLng           *float64  `db:"pickup_lng"`
	DropoffLocation     string    `db:"dropoff_location"`
	DropoffLat          *float64  `db:"dropoff_lat"`
	DropoffLng          *float64  `db:"dropoff_lng"`
	ContactNumber       string    `db:"contact_number"`
	NumPassengers       int       `db:"num_passengers"`
	Urgency             Urgency   `db:"urgency"`
	SpecialRequirements string    `db:"special_requirements"`
	Status              AidStatus `db:"status"`
	AssignedVolunteer   *string   `db:"assigned_volunteer"`
	CreatedAt           time.Time `db:"created_at"`
}

// ToDTO converts a TransportAid to a TransportAidDTO
func (t *TransportAid) ToDTO() *TransportAidDTO {
	dto := &TransportAidDTO{
		ID:                  t.ID,
		RequestorName:       t.RequestorName,
		PickupLocation:      t.PickupLocation,
		DropoffLocation:     t.DropoffLocation,
		ContactNumber:       t.ContactNumber,
		NumPassengers:       t.NumPassengers,
		Urgency:             t.Urgency,
		SpecialRequirements: t.SpecialRequirements,
		Status:              t.Status,
		AssignedVolunteer:   t.AssignedVolunteer,
		CreatedAt:           t.CreatedAt,
	}
	if lat, lng, ok := t.PickupCoordinates.LatLng(); ok {
		dto.PickupLat, dto.PickupLng = &lat, &lng
	}
	if lat, lng, ok := t.DropoffCoordinates.LatLng(); ok {
		dto.DropoffLat, dto.DropoffLng = &lat, &lng
	}
	return dto
}

// ToTransportAid converts a TransportAidDTO back to a TransportAid
func (d *TransportAidDTO) ToTransportAid() *TransportAid {
	t := &TransportAid{
		ID:                  d.ID,
		RequestorName:       d.RequestorName,
		PickupLocation:      d.PickupLocation,
		DropoffLocation:     d.DropoffLocation,
		ContactNumber:       d.ContactNumber,
		NumPassengers:       d.NumPassengers,
		Urgency:             d.Urgency,
		SpecialRequirements: d.SpecialRequirements,
		Status:              d.Status,
		AssignedVolunteer:   d.AssignedVolunteer,
		CreatedAt:           d.CreatedAt,
	}
	if d.PickupLat != nil && d.PickupLng != nil {
		t.PickupCoordinates = &Coordinates{Lat: d.PickupLat, Lng: d.PickupLng}
	}
	if d.DropoffLat != nil && d.DropoffLng != nil {
		t.DropoffCoordinates = &Coordinates{Lat: d.DropoffLat, Lng: d.DropoffLng}
	}
	return t
}

// MedicalAidRequest is the body of a medical aid submission
type MedicalAidRequest struct {
	PatientName    string       `json:"patientName" validate:"required"`
	Condition      string       `json:"condition" validate:"required"`
	Location       string       `json:"location" validate:"required"`
	Coordinates    *Coordinates `json:"coordinates"`
	ContactNumber  string       `json:"contactNumber" validate:"required,contact"`
	Urgency        Urgency      `json:"urgency" validate:"omitempty,oneof=low medium high"`
	AdditionalInfo string       `json:"additionalInfo"`
}

// TransportAidRequest is the body of a transport aid submission
type TransportAidRequest struct {
	RequestorName       string       `json:"requestorName" validate:"required"`
	PickupLocation      string       `json:"pickupLocation" validate:"required"`
	PickupCoordinates   *Coordinates `json:"pickupCoordinates"`
	DropoffLocation     string       `json:"dropoffLocation" validate:"required"`
	DropoffCoordinates  *Coordinates `json:"dropoffCoordinates"`
	ContactNumber       string       `json:"contactNumber" validate:"required,contact"`
	NumPassengers       *int         `json:"numPassengers" validate:"omitempty,min=1"`
	Urgency             Urgency      `json:"urgency" validate:"omitempty,oneof=low medium high"`
	SpecialRequirements string       `json:"specialRequirements"`
}

// AidStatusUpdateRequest changes the status of an aid request by hand
type AidStatusUpdateRequest struct {
	Status            AidStatus `json:"status" validate:"required,oneof=pending assigned in-progress completed cancelled"`
	AssignedVolunteer *string   `json:"assignedVolunteer"`
}

// AidSubmission is returned after an aid request is stored and volunteers are notified
type AidSubmission struct {
	Aid          AidRequest     `json:"data"`
	Notification *NotifySummary `json:"volunteerNotification"`
}
