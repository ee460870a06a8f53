package doctors_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/carewell-org/hospital/doctors"
	doctorsTest "github.com/carewell-org/hospital/doctors/test"
	"github.com/carewell-org/hospital/pointer"
	"github.com/carewell-org/hospital/store"
)

type fakeRepository struct {
	created []doctors.Doctor
}

func (f *fakeRepository) Get(ctx context.Context, id string) (*doctors.Doctor, error) {
	return nil, doctors.ErrNotFound
}

func (f *fakeRepository) List(ctx context.Context, filter *doctors.Filter, pagination store.Pagination, sorts []*store.Sort) ([]*doctors.Doctor, error) {
	return nil, nil
}

func (f *fakeRepository) Create(ctx context.Context, doctor doctors.Doctor) (*doctors.Doctor, error) {
	id := primitive.NewObjectID()
	doctor.Id = &id
	f.created = append(f.created, doctor)
	return &doctor, nil
}

func (f *fakeRepository) CountOnDuty(ctx context.Context) (int, error) {
	count := 0
	for _, doctor := range f.created {
		if doctor.OnDuty != nil && *doctor.OnDuty {
			count++
		}
	}
	return count, nil
}

var _ = Describe("Doctors Service", func() {
	var repo *fakeRepository
	var service doctors.Service

	BeforeEach(func() {
		repo = &fakeRepository{}

		var err error
		service, err = doctors.NewService(repo, zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())
	})

	Describe("Create", func() {
		It("defaults doctors to on duty", func() {
			doctor := doctorsTest.RandomDoctor()
			doctor.OnDuty = nil

			created, err := service.Create(context.Background(), doctor)

			Expect(err).ToNot(HaveOccurred())
			Expect(created.OnDuty).ToNot(BeNil())
			Expect(*created.OnDuty).To(BeTrue())
		})

		It("keeps an explicit off duty flag", func() {
			doctor := doctorsTest.RandomDoctor()
			doctor.OnDuty = pointer.FromAny(false)

			created, err := service.Create(context.Background(), doctor)

			Expect(err).ToNot(HaveOccurred())
			Expect(created.OnDuty).ToNot(BeNil())
			Expect(*created.OnDuty).To(BeFalse())
		})
	})

	Describe("CountOnDuty", func() {
		It("counts only doctors with the on duty flag set", func() {
			for _, onDuty := range []bool{true, true, false, true} {
				doctor := doctorsTest.RandomDoctor()
				doctor.OnDuty = pointer.FromAny(onDuty)

				_, err := service.Create(context.Background(), doctor)
				Expect(err).ToNot(HaveOccurred())
			}

			count, err := service.CountOnDuty(context.Background())
			Expect(err).ToNot(HaveOccurred())
			Expect(count).To(Equal(3))
		})
	})
})
