package kv_test

import (
	"context"
	"errors"
	"formbuilder-server/internal/infra/kv"
	"formbuilder-server/internal/infra/sql"
	mocksql "formbuilder-server/test/unit/doubles/infra/sql"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("SQLStore with a failing database", func() {
	var (
		ctx     context.Context
		ctrl    *gomock.Controller
		mockORM *mocksql.MockORM
	)

	BeforeEach(func() {
		ctx = context.Background()
		ctrl = gomock.NewController(GinkgoT())
		mockORM = mocksql.NewMockORM(ctrl)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("should fail to open when the migration fails", func() {
		mockORM.EXPECT().AutoMigrate(gomock.Any()).Return(errors.New("read-only database"))

		store, err := kv.NewSQLStore(mockORM)
		Expect(err).To(MatchError(ContainSubstring("auto migrating")))
		Expect(store).To(BeNil())
	})

	When("the table is migrated", func() {
		var store *kv.SQLStore

		BeforeEach(func() {
			mockORM.EXPECT().AutoMigrate(gomock.Any()).Return(nil)

			var err error
			store, err = kv.NewSQLStore(mockORM)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should map a missing row to ErrKeyNotFound", func() {
			mockORM.EXPECT().WithContext(ctx).Return(mockORM)
			mockORM.EXPECT().First(gomock.Any(), "entry_key = ?", "forms").Return(mockORM)
			mockORM.EXPECT().Error().Return(sql.ErrRecordNotFound)

			_, err := store.Get(ctx, "forms")
			Expect(err).To(MatchError(kv.ErrKeyNotFound))
		})

		It("should wrap read failures with the key", func() {
			dbErr := errors.New("connection reset")
			mockORM.EXPECT().WithContext(ctx).Return(mockORM)
			mockORM.EXPECT().First(gomock.Any(), "entry_key = ?", "forms").Return(mockORM)
			mockORM.EXPECT().Error().Return(dbErr)

			_, err := store.Get(ctx, "forms")
			Expect(err).To(MatchError(dbErr))
			Expect(err.Error()).To(ContainSubstring("getting entry forms"))
		})

		It("should wrap write failures with the key", func() {
			dbErr := errors.New("disk full")
			mockORM.EXPECT().WithContext(ctx).Return(mockORM)
			mockORM.EXPECT().Save(gomock.Any()).Return(mockORM)
			mockORM.EXPECT().Error().Return(dbErr)

			err := store.Put(ctx, "forms", []byte(`[]`))
			Expect(err).To(MatchError(dbErr))
			Expect(err.Error()).To(ContainSubstring("saving entry forms"))
		})
	})
})
