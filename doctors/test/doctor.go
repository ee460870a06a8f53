package test

import (
	"math/rand"
	"time"

	"github.com/jaswdr/faker"

	"github.com/carewell-org/hospital/doctors"
	"github.com/carewell-org/hospital/pointer"
)

var (
	Faker = faker.NewWithSeed(rand.NewSource(time.Now().UnixNano()))
)

var departments = []string{"Cardiology", "Emergency", "Neurology", "Oncology", "Pediatrics", "Radiology"}

func RandomDoctor() doctors.Doctor {
	return doctors.Doctor{
		FirstName:  pointer.FromAny(Faker.Person().FirstName()),
		LastName:   pointer.FromAny(Faker.Person().LastName()),
		Department: pointer.FromAny(Faker.RandomStringElement(departments)),
		Email:      pointer.FromAny(Faker.Internet().Email()),
		Phone:      pointer.FromAny(Faker.Phone().Number()),
		OnDuty:     pointer.FromAny(Faker.Boolean().Bool()),
	}
}
