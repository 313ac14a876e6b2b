package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"tiendapanel/pkg/errors"
)

func TestCreateTestimonialValidatesRating(t *testing.T) {
	uc := NewTestimonialUseCase(newMemTestimonialRepo())
	ctx := context.Background()

	for _, rating := range []int{0, -1, 6} {
		_, err := uc.CreateTestimonial(ctx, TestimonialInput{
			Name: "Ana", Rating: rating, Comment: "Excelente calidad",
		})
		assert.True(t, errors.Is(err, "BAD_REQUEST"), "rating %d", rating)
	}

	created, err := uc.CreateTestimonial(ctx, TestimonialInput{
		Name: "Ana", Rating: 5, Comment: "Excelente calidad", Active: true,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func TestListTestimonialsOnlyActive(t *testing.T) {
	uc := NewTestimonialUseCase(newMemTestimonialRepo())
	ctx := context.Background()

	uc.CreateTestimonial(ctx, TestimonialInput{Name: "Ana", Rating: 5, Comment: "Genial", Active: true})
	uc.CreateTestimonial(ctx, TestimonialInput{Name: "Beto", Rating: 2, Comment: "Regular", Active: false})

	all, _ := uc.ListTestimonials(ctx, false)
	assert.Len(t, all, 2)

	active, _ := uc.ListTestimonials(ctx, true)
	assert.Len(t, active, 1)
	assert.Equal(t, "Ana", active[0].Name)
}

func TestToggleTestimonialActive(t *testing.T) {
	uc := NewTestimonialUseCase(newMemTestimonialRepo())
	ctx := context.Background()

	created, _ := uc.CreateTestimonial(ctx, TestimonialInput{
		Name: "Ana", Rating: 5, Comment: "Genial", Active: true,
	})

	toggled, err := uc.ToggleTestimonialActive(ctx, created.ID, false)
	assert.NoError(t, err)
	assert.False(t, toggled.Active)
	assert.Equal(t, created.Comment, toggled.Comment)
	assert.Equal(t, created.Rating, toggled.Rating)
}
