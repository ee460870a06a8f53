package appointments_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"

	"github.com/carewell-org/hospital/appointments"
	appointmentsTest "github.com/carewell-org/hospital/appointments/test"
	"github.com/carewell-org/hospital/pointer"
	dbTest "github.com/carewell-org/hospital/store/test"
)

var _ = Describe("Appointments Repository", func() {
	var repo appointments.Repository
	var collection *mongo.Collection
	var insertedIds []interface{}

	BeforeEach(func() {
		database := dbTest.GetTestDatabase()
		collection = database.Collection("appointments")

		lifecycle := fxtest.NewLifecycle(GinkgoT())
		var err error
		repo, err = appointments.NewRepository(database, zap.NewNop().Sugar(), lifecycle)
		Expect(err).ToNot(HaveOccurred())
		lifecycle.RequireStart()

		insertedIds = nil
	})

	AfterEach(func() {
		if len(insertedIds) > 0 {
			selector := primitive.M{
				"_id": primitive.M{
					"$in": insertedIds,
				},
			}
			_, err := collection.DeleteMany(context.Background(), selector)
			Expect(err).ToNot(HaveOccurred())
		}
	})

	insert := func(appointment appointments.Appointment) appointments.Appointment {
		created, err := repo.Create(context.Background(), appointment)
		Expect(err).ToNot(HaveOccurred())
		Expect(created.Id).ToNot(BeNil())
		insertedIds = append(insertedIds, *created.Id)
		return *created
	}

	Describe("CountByDate", func() {
		It("counts only appointments with a matching date", func() {
			date := "2031-11-20"
			other := "2031-11-21"

			before, err := repo.CountByDate(context.Background(), date)
			Expect(err).ToNot(HaveOccurred())

			for _, d := range []string{date, date, other} {
				appointment := appointmentsTest.RandomAppointment()
				appointment.Date = pointer.FromAny(d)
				insert(appointment)
			}

			after, err := repo.CountByDate(context.Background(), date)
			Expect(err).ToNot(HaveOccurred())
			Expect(after - before).To(Equal(2))
		})
	})

	Describe("Get", func() {
		It("round trips the appointment", func() {
			created := insert(appointmentsTest.RandomAppointment())

			found, err := repo.Get(context.Background(), created.Id.Hex())
			Expect(err).ToNot(HaveOccurred())
			Expect(found.Name).To(Equal(created.Name))
			Expect(found.Date).To(Equal(created.Date))
			Expect(found.Status).To(Equal(created.Status))
		})
	})
})
