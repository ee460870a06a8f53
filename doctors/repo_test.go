package doctors_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"

	"github.com/carewell-org/hospital/doctors"
	doctorsTest "github.com/carewell-org/hospital/doctors/test"
	"github.com/carewell-org/hospital/pointer"
	"github.com/carewell-org/hospital/store"
	dbTest "github.com/carewell-org/hospital/store/test"
)

var _ = Describe("Doctors Repository", func() {
	var repo doctors.Repository
	var collection *mongo.Collection
	var insertedIds []interface{}

	BeforeEach(func() {
		database := dbTest.GetTestDatabase()
		collection = database.Collection("doctors")

		lifecycle := fxtest.NewLifecycle(GinkgoT())
		var err error
		repo, err = doctors.NewRepository(database, zap.NewNop().Sugar(), lifecycle)
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

	insert := func(doctor doctors.Doctor) doctors.Doctor {
		created, err := repo.Create(context.Background(), doctor)
		Expect(err).ToNot(HaveOccurred())
		Expect(created.Id).ToNot(BeNil())
		insertedIds = append(insertedIds, *created.Id)
		return *created
	}

	Describe("Create", func() {
		It("inserts the doctor in the collection", func() {
			created := insert(doctorsTest.RandomDoctor())

			var found doctors.Doctor
			err := collection.FindOne(context.Background(), primitive.M{"_id": created.Id}).Decode(&found)
			Expect(err).ToNot(HaveOccurred())
			Expect(found.FirstName).To(Equal(created.FirstName))
			Expect(found.Department).To(Equal(created.Department))
			Expect(found.CreatedTime.IsZero()).To(BeFalse())
		})
	})

	Describe("Get", func() {
		It("returns the correct doctor", func() {
			created := insert(doctorsTest.RandomDoctor())

			found, err := repo.Get(context.Background(), created.Id.Hex())
			Expect(err).ToNot(HaveOccurred())
			Expect(found.LastName).To(Equal(created.LastName))
		})

		It("returns ErrNotFound for an unknown id", func() {
			_, err := repo.Get(context.Background(), primitive.NewObjectID().Hex())
			Expect(err).To(MatchError(doctors.ErrNotFound))
		})
	})

	Describe("CountOnDuty", func() {
		It("counts only on duty doctors", func() {
			before, err := repo.CountOnDuty(context.Background())
			Expect(err).ToNot(HaveOccurred())

			for _, onDuty := range []bool{true, false, true} {
				doctor := doctorsTest.RandomDoctor()
				doctor.OnDuty = pointer.FromAny(onDuty)
				insert(doctor)
			}

			after, err := repo.CountOnDuty(context.Background())
			Expect(err).ToNot(HaveOccurred())
			Expect(after - before).To(Equal(2))
		})
	})

	Describe("List", func() {
		It("filters by on duty", func() {
			doctor := doctorsTest.RandomDoctor()
			doctor.OnDuty = pointer.FromAny(true)
			created := insert(doctor)

			list, err := repo.List(context.Background(), &doctors.Filter{OnDuty: pointer.FromAny(true)}, store.DefaultPagination().WithLimit(1000), nil)
			Expect(err).ToNot(HaveOccurred())

			ids := make([]string, 0, len(list))
			for _, d := range list {
				Expect(d.OnDuty).ToNot(BeNil())
				Expect(*d.OnDuty).To(BeTrue())
				ids = append(ids, d.Id.Hex())
			}
			Expect(ids).To(ContainElement(created.Id.Hex()))
		})

		It("sorts by the requested attribute", func() {
			department := primitive.NewObjectID().Hex()
			for _, lastName := range []string{"Wu", "Ahmed", "Jensen"} {
				doctor := doctorsTest.RandomDoctor()
				doctor.Department = pointer.FromAny(department)
				doctor.LastName = pointer.FromAny(lastName)
				insert(doctor)
			}

			filter := &doctors.Filter{Department: pointer.FromAny(department)}
			ascending := []*store.Sort{{Attribute: "lastName", Ascending: true}}
			list, err := repo.List(context.Background(), filter, store.DefaultPagination(), ascending)
			Expect(err).ToNot(HaveOccurred())
			Expect(list).To(HaveLen(3))

			lastNames := make([]string, 0, len(list))
			for _, d := range list {
				lastNames = append(lastNames, pointer.ToString(d.LastName))
			}
			Expect(lastNames).To(Equal([]string{"Ahmed", "Jensen", "Wu"}))
		})
	})
})
