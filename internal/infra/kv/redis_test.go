package kv_test

import (
	"context"
	"errors"
	"formbuilder-server/internal/infra/kv"
	mockkv "formbuilder-server/test/unit/doubles/infra/kv"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"
	"go.uber.org/mock/gomock"
)

var _ = Describe("RedisStore", func() {
	var (
		ctx        context.Context
		ctrl       *gomock.Controller
		mockClient *mockkv.MockRedisClient
		store      *kv.RedisStore
	)

	BeforeEach(func() {
		ctx = context.Background()
		ctrl = gomock.NewController(GinkgoT())
		mockClient = mockkv.NewMockRedisClient(ctrl)
		store = kv.NewRedisStore(mockClient)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("should return the stored bytes", func() {
		cmd := redis.NewStringCmd(ctx, "get", "forms")
		cmd.SetVal(`[]`)
		mockClient.EXPECT().Get(gomock.Any(), "forms").Return(cmd)

		value, err := store.Get(ctx, "forms")
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal([]byte(`[]`)))
	})

	It("should map redis.Nil to ErrKeyNotFound", func() {
		cmd := redis.NewStringCmd(ctx, "get", "forms")
		cmd.SetErr(redis.Nil)
		mockClient.EXPECT().Get(gomock.Any(), "forms").Return(cmd)

		_, err := store.Get(ctx, "forms")
		Expect(err).To(MatchError(kv.ErrKeyNotFound))
	})

	It("should wrap other read errors", func() {
		cmd := redis.NewStringCmd(ctx, "get", "forms")
		cmd.SetErr(errors.New("connection reset"))
		mockClient.EXPECT().Get(gomock.Any(), "forms").Return(cmd)

		_, err := store.Get(ctx, "forms")
		Expect(err).To(MatchError(ContainSubstring("connection reset")))
		Expect(err).NotTo(MatchError(kv.ErrKeyNotFound))
	})

	It("should write without expiry", func() {
		mockClient.EXPECT().
			Set(gomock.Any(), "forms", []byte(`[]`), time.Duration(0)).
			Return(redis.NewStatusCmd(ctx, "OK"))

		Expect(store.Put(ctx, "forms", []byte(`[]`))).To(Succeed())
	})

	It("should report write errors", func() {
		cmd := redis.NewStatusCmd(ctx, "set")
		cmd.SetErr(errors.New("READONLY"))
		mockClient.EXPECT().Set(gomock.Any(), "forms", gomock.Any(), time.Duration(0)).Return(cmd)

		Expect(store.Put(ctx, "forms", []byte(`[]`))).To(MatchError(ContainSubstring("READONLY")))
	})
})
