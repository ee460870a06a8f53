package test

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jaswdr/faker"

	"github.com/carewell-org/hospital/patients"
	"github.com/carewell-org/hospital/pointer"
)

var (
	Faker = faker.NewWithSeed(rand.NewSource(time.Now().UnixNano()))
)

var bloodGroups = []string{"O+", "O-", "A+", "A-", "B+", "B-", "AB+", "AB-"}

func RandomPatient() patients.Patient {
	return patients.Patient{
		FirstName:  pointer.FromAny(Faker.Person().FirstName()),
		LastName:   pointer.FromAny(Faker.Person().LastName()),
		Email:      pointer.FromAny(Faker.Internet().Email()),
		Phone:      pointer.FromAny(Faker.Phone().Number()),
		BirthDate:  pointer.FromAny(Faker.Time().Time(time.Now()).Format("2006-01-02")),
		BloodGroup: pointer.FromAny(Faker.RandomStringElement(bloodGroups)),
		Mrn:        pointer.FromAny(uuid.NewString()),
	}
}
