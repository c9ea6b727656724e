package kv_test

import (
	"context"
	"sync"
	"formbuilder-server/internal/infra/cache"
	"formbuilder-server/internal/infra/kv"
	"formbuilder-server/internal/infra/sql"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// storeContract runs the behaviour every Store must share.
func storeContract(newStore func() kv.Store) {
	var (
		ctx   context.Context
		store kv.Store
	)

	BeforeEach(func() {
		ctx = context.Background()
		store = newStore()
	})

	It("should report a missing key", func() {
		_, err := store.Get(ctx, "absent")
		Expect(err).To(MatchError(kv.ErrKeyNotFound))
	})

	It("should return what was put", func() {
		Expect(store.Put(ctx, "k", []byte(`[{"id":"1"}]`))).To(Succeed())

		value, err := store.Get(ctx, "k")
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal([]byte(`[{"id":"1"}]`)))
	})

	It("should replace the whole value on put", func() {
		Expect(store.Put(ctx, "k", []byte("first value"))).To(Succeed())
		Expect(store.Put(ctx, "k", []byte("2nd"))).To(Succeed())

		value, err := store.Get(ctx, "k")
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal([]byte("2nd")))
	})

	It("should keep keys apart", func() {
		Expect(store.Put(ctx, "a", []byte("A"))).To(Succeed())
		Expect(store.Put(ctx, "b", []byte("B"))).To(Succeed())

		value, err := store.Get(ctx, "a")
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal([]byte("A")))
	})
}

var _ = Describe("MemoryStore", func() {
	storeContract(func() kv.Store { return kv.NewMemoryStore() })

	It("should not share buffers with callers", func() {
		ctx := context.Background()
		store := kv.NewMemoryStore()
		input := []byte("abc")
		Expect(store.Put(ctx, "k", input)).To(Succeed())
		input[0] = 'z'

		value, _ := store.Get(ctx, "k")
		value[1] = 'z'

		again, _ := store.Get(ctx, "k")
		Expect(again).To(Equal([]byte("abc")))
	})
})

var _ = Describe("SQLStore", func() {
	storeContract(func() kv.Store {
		orm, err := sql.NewMemoryORM()
		Expect(err).NotTo(HaveOccurred())
		store, err := kv.NewSQLStore(orm)
		Expect(err).NotTo(HaveOccurred())
		return store
	})
})

var _ = Describe("CachedStore", func() {
	storeContract(func() kv.Store {
		c, err := cache.New(nil)
		Expect(err).NotTo(HaveOccurred())
		return kv.NewCachedStore(kv.NewMemoryStore(), c, 0)
	})

	It("should never serve a value older than the last put", func() {
		ctx := context.Background()
		c, err := cache.New(nil)
		Expect(err).NotTo(HaveOccurred())
		store := kv.NewCachedStore(kv.NewMemoryStore(), c, 0)

		Expect(store.Put(ctx, "k", []byte("v1"))).To(Succeed())
		value, _ := store.Get(ctx, "k")
		Expect(value).To(Equal([]byte("v1")))
		c.Wait()

		Expect(store.Put(ctx, "k", []byte("v2"))).To(Succeed())
		value, _ = store.Get(ctx, "k")
		Expect(value).To(Equal([]byte("v2")))
	})

	It("should not cache a read that overlaps a put", func() {
		ctx := context.Background()
		c, err := cache.New(nil)
		Expect(err).NotTo(HaveOccurred())
		backend := newGatedStore(kv.NewMemoryStore())
		store := kv.NewCachedStore(backend, c, 0)
		Expect(backend.Store.Put(ctx, "k", []byte("old"))).To(Succeed())

		read := make(chan []byte, 1)
		go func() {
			defer GinkgoRecover()
			value, err := store.Get(ctx, "k")
			Expect(err).NotTo(HaveOccurred())
			read <- value
		}()

		Eventually(backend.loaded).Should(BeClosed())
		Expect(store.Put(ctx, "k", []byte("new"))).To(Succeed())
		close(backend.release)

		Eventually(read).Should(Receive(Equal([]byte("old"))))
		c.Wait()

		value, err := store.Get(ctx, "k")
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal([]byte("new")))
	})

	It("should serve repeated reads from the cache", func() {
		ctx := context.Background()
		c, err := cache.New(nil)
		Expect(err).NotTo(HaveOccurred())
		backend := &countingStore{Store: kv.NewMemoryStore()}
		store := kv.NewCachedStore(backend, c, 0)

		Expect(store.Put(ctx, "k", []byte("v"))).To(Succeed())
		_, _ = store.Get(ctx, "k")
		c.Wait()
		_, _ = store.Get(ctx, "k")
		_, _ = store.Get(ctx, "k")

		Expect(backend.gets).To(Equal(1))
	})

	It("should not cache a missing key", func() {
		ctx := context.Background()
		c, err := cache.New(nil)
		Expect(err).NotTo(HaveOccurred())
		backend := kv.NewMemoryStore()
		store := kv.NewCachedStore(backend, c, 0)

		_, err = store.Get(ctx, "k")
		Expect(err).To(MatchError(kv.ErrKeyNotFound))

		Expect(backend.Put(ctx, "k", []byte("late"))).To(Succeed())
		value, err := store.Get(ctx, "k")
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal([]byte("late")))
	})
})

type countingStore struct {
	kv.Store
	gets int
}

func (s *countingStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.gets++
	return s.Store.Get(ctx, key)
}

// gatedStore holds its first Get after reading until release is closed.
type gatedStore struct {
	kv.Store
	once    sync.Once
	loaded  chan struct{}
	release chan struct{}
}

func newGatedStore(next kv.Store) *gatedStore {
	return &gatedStore{
		Store:   next,
		loaded:  make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (s *gatedStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.Store.Get(ctx, key)
	s.once.Do(func() {
		close(s.loaded)
		<-s.release
	})
	return value, err
}
