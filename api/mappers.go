package api

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carewell-org/hospital/appointments"
	"github.com/carewell-org/hospital/doctors"
	"github.com/carewell-org/hospital/patients"
	"github.com/carewell-org/hospital/pointer"
)

type Message struct {
	Message string `json:"message"`
}

type Created struct {
	Id     string `json:"id"`
	Status string `json:"status"`
}

type Diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type Patient struct {
	Id          *string `json:"id,omitempty"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Dob         *string `json:"dob,omitempty"`
	BloodGroup  *string `json:"blood_group,omitempty"`
	Mrn         *string `json:"mrn,omitempty"`
	CreatedTime *string `json:"created_time,omitempty"`
}

type Doctor struct {
	Id          *string `json:"id,omitempty"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Department  string  `json:"department"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	OnDuty      *bool   `json:"on_duty,omitempty"`
	CreatedTime *string `json:"created_time,omitempty"`
}

type Appointment struct {
	Id          *string    `json:"id,omitempty"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Department  string     `json:"department"`
	Date        string     `json:"date"`
	Notes       *string    `json:"notes,omitempty"`
	Status      *string    `json:"status,omitempty"`
	BookingCode *string    `json:"booking_code,omitempty"`
	CreatedFor  *time.Time `json:"created_for,omitempty"`
	CreatedTime *string    `json:"created_time,omitempty"`
}

func NewPatient(dto Patient) patients.Patient {
	return patients.Patient{
		FirstName:  &dto.FirstName,
		LastName:   &dto.LastName,
		Email:      dto.Email,
		Phone:      dto.Phone,
		BirthDate:  dto.Dob,
		BloodGroup: dto.BloodGroup,
	}
}

func NewPatientDto(p *patients.Patient) Patient {
	return Patient{
		Id:          objectIdToString(p.Id),
		FirstName:   pointer.ToString(p.FirstName),
		LastName:    pointer.ToString(p.LastName),
		Email:       p.Email,
		Phone:       p.Phone,
		Dob:         p.BirthDate,
		BloodGroup:  p.BloodGroup,
		Mrn:         p.Mrn,
		CreatedTime: timeToString(p.CreatedTime),
	}
}

func NewPatientsDto(list []*patients.Patient) []Patient {
	dtos := make([]Patient, 0, len(list))
	for _, p := range list {
		dtos = append(dtos, NewPatientDto(p))
	}
	return dtos
}

func NewDoctor(dto Doctor) doctors.Doctor {
	return doctors.Doctor{
		FirstName:  &dto.FirstName,
		LastName:   &dto.LastName,
		Department: &dto.Department,
		Email:      dto.Email,
		Phone:      dto.Phone,
		OnDuty:     dto.OnDuty,
	}
}

func NewDoctorDto(d *doctors.Doctor) Doctor {
	return Doctor{
		Id:          objectIdToString(d.Id),
		FirstName:   pointer.ToString(d.FirstName),
		LastName:    pointer.ToString(d.LastName),
		Department:  pointer.ToString(d.Department),
		Email:       d.Email,
		Phone:       d.Phone,
		OnDuty:      d.OnDuty,
		CreatedTime: timeToString(d.CreatedTime),
	}
}

func NewDoctorsDto(list []*doctors.Doctor) []Doctor {
	dtos := make([]Doctor, 0, len(list))
	for _, d := range list {
		dtos = append(dtos, NewDoctorDto(d))
	}
	return dtos
}

func NewAppointment(dto Appointment) appointments.Appointment {
	return appointments.Appointment{
		Name:       &dto.Name,
		Email:      &dto.Email,
		Phone:      &dto.Phone,
		Department: &dto.Department,
		Date:       &dto.Date,
		Notes:      dto.Notes,
		Status:     dto.Status,
		CreatedFor: dto.CreatedFor,
	}
}

func NewAppointmentDto(a *appointments.Appointment) Appointment {
	return Appointment{
		Id:          objectIdToString(a.Id),
		Name:        pointer.ToString(a.Name),
		Email:       pointer.ToString(a.Email),
		Phone:       pointer.ToString(a.Phone),
		Department:  pointer.ToString(a.Department),
		Date:        pointer.ToString(a.Date),
		Notes:       a.Notes,
		Status:      a.Status,
		BookingCode: a.BookingCode,
		CreatedFor:  a.CreatedFor,
		CreatedTime: timeToString(a.CreatedTime),
	}
}

func NewAppointmentsDto(list []*appointments.Appointment) []Appointment {
	dtos := make([]Appointment, 0, len(list))
	for _, a := range list {
		dtos = append(dtos, NewAppointmentDto(a))
	}
	return dtos
}

func objectIdToString(id *primitive.ObjectID) *string {
	if id == nil {
		return nil
	}
	return pointer.FromAny(id.Hex())
}

func timeToString(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	return pointer.FromAny(t.Format(time.RFC3339))
}
