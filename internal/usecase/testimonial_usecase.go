package usecase

import (
	"context"
	"strings"

	"tiendapanel/internal/domain/entity"
	"tiendapanel/internal/domain/repository"
	"tiendapanel/pkg/errors"
)

type TestimonialUseCase struct {
	testimonialRepo repository.TestimonialRepository
}

func NewTestimonialUseCase(testimonialRepo repository.TestimonialRepository) *TestimonialUseCase {
	return &TestimonialUseCase{
		testimonialRepo: testimonialRepo,
	}
}

type TestimonialInput struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Image   string `json:"image,omitempty"`
	Active  bool   `json:"active"`
}

func (uc *TestimonialUseCase) ListTestimonials(ctx context.Context, onlyActive bool) ([]*entity.Testimonial, error) {
	return uc.testimonialRepo.List(ctx, onlyActive)
}

func (uc *TestimonialUseCase) GetTestimonial(ctx context.Context, id string) (*entity.Testimonial, error) {
	return uc.testimonialRepo.GetByID(ctx, id)
}

func (uc *TestimonialUseCase) CreateTestimonial(ctx context.Context, input TestimonialInput) (*entity.Testimonial, error) {
	if err := validateTestimonialInput(input); err != nil {
		return nil, err
	}

	testimonial := &entity.Testimonial{
		Name:    input.Name,
		Rating:  input.Rating,
		Comment: input.Comment,
		Image:   input.Image,
		Active:  input.Active,
	}

	if err := uc.testimonialRepo.Create(ctx, testimonial); err != nil {
		return nil, err
	}

	return testimonial, nil
}

func (uc *TestimonialUseCase) UpdateTestimonial(ctx context.Context, id string, input TestimonialInput) (*entity.Testimonial, error) {
	if err := validateTestimonialInput(input); err != nil {
		return nil, err
	}

	testimonial, err := uc.testimonialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	testimonial.Name = input.Name
	testimonial.Rating = input.Rating
	testimonial.Comment = input.Comment
	testimonial.Image = input.Image
	testimonial.Active = input.Active

	if err := uc.testimonialRepo.Update(ctx, testimonial); err != nil {
		return nil, err
	}

	return testimonial, nil
}

func (uc *TestimonialUseCase) ToggleTestimonialActive(ctx context.Context, id string, active bool) (*entity.Testimonial, error) {
	if err := uc.testimonialRepo.UpdateActive(ctx, id, active); err != nil {
		return nil, err
	}

	return uc.testimonialRepo.GetByID(ctx, id)
}

func (uc *TestimonialUseCase) DeleteTestimonial(ctx context.Context, id string) error {
	return uc.testimonialRepo.Delete(ctx, id)
}

func validateTestimonialInput(input TestimonialInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return errors.BadRequest("Testimonial name is required", nil)
	}
	if strings.TrimSpace(input.Comment) == "" {
		return errors.BadRequest("Testimonial comment is required", nil)
	}
	if input.Rating < 1 || input.Rating > 5 {
		return errors.BadRequest("Rating must be between 1 and 5", nil)
	}
	return nil
}
