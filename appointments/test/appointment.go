package test

import (
	"math/rand"
	"time"

	"github.com/jaswdr/faker"

	"github.com/carewell-org/hospital/appointments"
	"github.com/carewell-org/hospital/pointer"
)

var (
	Faker = faker.NewWithSeed(rand.NewSource(time.Now().UnixNano()))
)

var departments = []string{"Cardiology", "Emergency", "Neurology", "Oncology", "Pediatrics", "Radiology"}

func RandomAppointment() appointments.Appointment {
	return appointments.Appointment{
		Name:       pointer.FromAny(Faker.Person().Name()),
		Email:      pointer.FromAny(Faker.Internet().Email()),
		Phone:      pointer.FromAny(Faker.Phone().Number()),
		Department: pointer.FromAny(Faker.RandomStringElement(departments)),
		Date:       pointer.FromAny(RandomDate()),
		Notes:      pointer.FromAny(Faker.Lorem().Sentence(6)),
		Status:     pointer.FromAny(appointments.StatusRequested),
	}
}

func RandomDate() string {
	days := Faker.IntBetween(0, 30)
	return time.Now().UTC().AddDate(0, 0, days).Format(appointments.DateLayout)
}
