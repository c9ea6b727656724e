package kv_test

import (
	"context"
	"formbuilder-server/internal/infra/kv"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Open", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("should default to memory", func() {
		store, err := kv.Open(ctx, kv.Options{})
		Expect(err).NotTo(HaveOccurred())
		Expect(store).To(BeAssignableToTypeOf(&kv.MemoryStore{}))
	})

	It("should open a sqlite file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "forms.db")
		store, err := kv.Open(ctx, kv.Options{Backend: kv.BackendSQLite, DSN: path})
		Expect(err).NotTo(HaveOccurred())
		Expect(store).To(BeAssignableToTypeOf(&kv.SQLStore{}))
	})

	It("should wrap remote stores with a cache when asked", func() {
		store, err := kv.Open(ctx, kv.Options{Backend: kv.BackendSQLite, CacheTTL: time.Minute})
		Expect(err).NotTo(HaveOccurred())
		Expect(store).To(BeAssignableToTypeOf(&kv.CachedStore{}))

		Expect(store.Put(ctx, "k", []byte("v"))).To(Succeed())
		value, err := store.Get(ctx, "k")
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal([]byte("v")))
	})

	It("should reject an unknown backend", func() {
		_, err := kv.Open(ctx, kv.Options{Backend: "etcd"})
		Expect(err).To(MatchError(ContainSubstring("unknown store backend")))
	})
})
