package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"tiendapanel/internal/domain/entity"
	"tiendapanel/pkg/errors"
)

// In-memory repository fakes implementing the same contracts as the
// Firestore adapters: slug/email uniqueness surfaces as CONFLICT, deleting a
// missing id is NOT_FOUND, and list ordering matches the store queries.

type memProductRepo struct {
	products map[string]*entity.Product
	seq      int
	failWith error
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[string]*entity.Product)}
}

func (r *memProductRepo) nextID() string {
	r.seq++
	return fmt.Sprintf("prod-%d", r.seq)
}

func (r *memProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if r.failWith != nil {
		return r.failWith
	}
	for _, p := range r.products {
		if p.Slug == product.Slug {
			return errors.Conflict("A product with this slug already exists", nil)
		}
	}
	if product.ID == "" {
		product.ID = r.nextID()
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Unix(0, 0).Add(time.Duration(r.seq) * time.Second)
	}
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *memProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	clone := *p
	return &clone, nil
}

func (r *memProductRepo) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Slug == slug && p.Active {
			clone := *p
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Product", nil)
}

func (r *memProductRepo) List(ctx context.Context, onlyActive bool) ([]*entity.Product, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []*entity.Product
	for _, p := range r.products {
		if onlyActive && !p.Active {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memProductRepo) ListFeatured(ctx context.Context) ([]*entity.Product, error) {
	all, err := r.List(ctx, true)
	if err != nil {
		return nil, err
	}
	var out []*entity.Product
	for _, p := range all {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProductRepo) ListByCategory(ctx context.Context, categoryName string) ([]*entity.Product, error) {
	all, err := r.List(ctx, true)
	if err != nil {
		return nil, err
	}
	var out []*entity.Product
	for _, p := range all {
		if p.CategoryName == categoryName {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.products[product.ID]; !ok {
		return errors.NotFound("Product", nil)
	}
	for id, p := range r.products {
		if p.Slug == product.Slug && id != product.ID {
			return errors.Conflict("A product with this slug already exists", nil)
		}
	}
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *memProductRepo) UpdateActive(ctx context.Context, id string, active bool) error {
	p, ok := r.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	p.Active = active
	return nil
}

func (r *memProductRepo) UpdateStock(ctx context.Context, id string, quantity int) error {
	p, ok := r.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	p.Stock = quantity
	return nil
}

func (r *memProductRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return errors.NotFound("Product", nil)
	}
	delete(r.products, id)
	return nil
}

type memCategoryRepo struct {
	categories map[string]*entity.Category
	seq        int
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{categories: make(map[string]*entity.Category)}
}

func (r *memCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	for _, c := range r.categories {
		if c.Slug == category.Slug {
			return errors.Conflict("A category with this slug already exists", nil)
		}
	}
	if category.ID == "" {
		r.seq++
		category.ID = fmt.Sprintf("cat-%d", r.seq)
	}
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now()
	}
	clone := *category
	r.categories[category.ID] = &clone
	return nil
}

func (r *memCategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, errors.NotFound("Category", nil)
	}
	clone := *c
	return &clone, nil
}

func (r *memCategoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Slug == slug {
			clone := *c
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Category", nil)
}

func (r *memCategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		clone := *c
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	if _, ok := r.categories[category.ID]; !ok {
		return errors.NotFound("Category", nil)
	}
	clone := *category
	r.categories[category.ID] = &clone
	return nil
}

func (r *memCategoryRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.categories[id]; !ok {
		return errors.NotFound("Category", nil)
	}
	delete(r.categories, id)
	return nil
}

type memOrderRepo struct {
	orders   map[string]*entity.Order
	seq      int
	failWith error
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: make(map[string]*entity.Order)}
}

func (r *memOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		r.seq++
		order.ID = fmt.Sprintf("order-%d", r.seq)
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Unix(0, 0).Add(time.Duration(r.seq) * time.Second)
	}
	if order.Status == "" {
		order.Status = entity.OrderStatusPending
	}
	clone := *order
	r.orders[order.ID] = &clone
	return nil
}

func (r *memOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	clone := *o
	return &clone, nil
}

func (r *memOrderRepo) List(ctx context.Context) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		clone := *o
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memOrderRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	if r.failWith != nil {
		return r.failWith
	}
	o, ok := r.orders[id]
	if !ok {
		return errors.NotFound("Order", nil)
	}
	o.Status = status
	return nil
}

func (r *memOrderRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.orders[id]; !ok {
		return errors.NotFound("Order", nil)
	}
	delete(r.orders, id)
	return nil
}

type memTestimonialRepo struct {
	testimonials map[string]*entity.Testimonial
	seq          int
}

func newMemTestimonialRepo() *memTestimonialRepo {
	return &memTestimonialRepo{testimonials: make(map[string]*entity.Testimonial)}
}

func (r *memTestimonialRepo) Create(ctx context.Context, testimonial *entity.Testimonial) error {
	if testimonial.ID == "" {
		r.seq++
		testimonial.ID = fmt.Sprintf("testi-%d", r.seq)
	}
	if testimonial.CreatedAt.IsZero() {
		testimonial.CreatedAt = time.Unix(0, 0).Add(time.Duration(r.seq) * time.Second)
	}
	clone := *testimonial
	r.testimonials[testimonial.ID] = &clone
	return nil
}

func (r *memTestimonialRepo) GetByID(ctx context.Context, id string) (*entity.Testimonial, error) {
	t, ok := r.testimonials[id]
	if !ok {
		return nil, errors.NotFound("Testimonial", nil)
	}
	clone := *t
	return &clone, nil
}

func (r *memTestimonialRepo) List(ctx context.Context, onlyActive bool) ([]*entity.Testimonial, error) {
	var out []*entity.Testimonial
	for _, t := range r.testimonials {
		if onlyActive && !t.Active {
			continue
		}
		clone := *t
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memTestimonialRepo) Update(ctx context.Context, testimonial *entity.Testimonial) error {
	if _, ok := r.testimonials[testimonial.ID]; !ok {
		return errors.NotFound("Testimonial", nil)
	}
	clone := *testimonial
	r.testimonials[testimonial.ID] = &clone
	return nil
}

func (r *memTestimonialRepo) UpdateActive(ctx context.Context, id string, active bool) error {
	t, ok := r.testimonials[id]
	if !ok {
		return errors.NotFound("Testimonial", nil)
	}
	t.Active = active
	return nil
}

func (r *memTestimonialRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.testimonials[id]; !ok {
		return errors.NotFound("Testimonial", nil)
	}
	delete(r.testimonials, id)
	return nil
}

type memNewsletterRepo struct {
	subscribers map[string]*entity.Subscriber
}

func newMemNewsletterRepo() *memNewsletterRepo {
	return &memNewsletterRepo{subscribers: make(map[string]*entity.Subscriber)}
}

func (r *memNewsletterRepo) List(ctx context.Context) ([]*entity.Subscriber, error) {
	var out []*entity.Subscriber
	for _, s := range r.subscribers {
		clone := *s
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubscribedAt.After(out[j].SubscribedAt) })
	return out, nil
}

func (r *memNewsletterRepo) Subscribe(ctx context.Context, email string) (*entity.Subscriber, error) {
	if _, ok := r.subscribers[email]; ok {
		return nil, errors.Conflict("This email is already subscribed", nil)
	}
	sub := &entity.Subscriber{Email: email, SubscribedAt: time.Now()}
	r.subscribers[email] = sub
	clone := *sub
	return &clone, nil
}

func (r *memNewsletterRepo) Unsubscribe(ctx context.Context, email string) error {
	if _, ok := r.subscribers[email]; !ok {
		return errors.NotFound("Subscriber", nil)
	}
	delete(r.subscribers, email)
	return nil
}

type memSettingsRepo struct {
	settings map[string]*entity.Setting
}

func newMemSettingsRepo() *memSettingsRepo {
	return &memSettingsRepo{settings: make(map[string]*entity.Setting)}
}

func (r *memSettingsRepo) List(ctx context.Context) ([]*entity.Setting, error) {
	var out []*entity.Setting
	for _, s := range r.settings {
		clone := *s
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memSettingsRepo) Get(ctx context.Context, key string) (*entity.Setting, error) {
	s, ok := r.settings[key]
	if !ok {
		return nil, errors.NotFound("Setting", nil)
	}
	clone := *s
	return &clone, nil
}

func (r *memSettingsRepo) Upsert(ctx context.Context, setting *entity.Setting) error {
	clone := *setting
	r.settings[setting.Key] = &clone
	return nil
}

func (r *memSettingsRepo) UpsertAll(ctx context.Context, settings []*entity.Setting) error {
	for _, s := range settings {
		clone := *s
		r.settings[s.Key] = &clone
	}
	return nil
}

type memStatsRepo struct {
	stats *entity.AdminStats
}

func (r *memStatsRepo) Get(ctx context.Context) (*entity.AdminStats, error) {
	if r.stats == nil {
		return nil, errors.NotFound("Stats", nil)
	}
	clone := *r.stats
	return &clone, nil
}

// fakeStorage records uploads and can be armed to fail after n successes,
// which exercises the sequential multi-image contract.
type fakeStorage struct {
	uploads   []string
	failAfter int
	fail      bool
}

func (s *fakeStorage) UploadFile(ctx context.Context, file io.Reader, filename, folder string) (string, error) {
	if s.fail && len(s.uploads) >= s.failAfter {
		return "", errors.Asset("Failed to upload file", nil)
	}
	var buf bytes.Buffer
	if file != nil {
		io.Copy(&buf, file)
	}
	url := fmt.Sprintf("https://storage.googleapis.com/images/%s/%d_%s", folder, len(s.uploads), filename)
	s.uploads = append(s.uploads, url)
	return url, nil
}

func (s *fakeStorage) DeleteFile(ctx context.Context, fileURL string) error {
	return nil
}
