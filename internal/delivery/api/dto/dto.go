// Package dto holds the JSON bodies of the api delivery. The web client
// decodes the same types.
package dto

import (
	"time"

	"github.com/google/uuid"

	"ratesmart/internal/domain/entity"
	"ratesmart/internal/usecase"
)

// --- Requests ---

type SignupRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Country     string `json:"country" validate:"required"`
	State       string `json:"state" validate:"required"`
	Hours       string `json:"hours" validate:"required"`
	Description string `json:"description"`
}

// LoginRequest is validated by the usecase so that missing fields get the
// same message for business and admin logins.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type UpdateBusinessRequest struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty" validate:"omitnil,email"`
	Phone       *string `json:"phone,omitempty"`
	Country     *string `json:"country,omitempty"`
	State       *string `json:"state,omitempty"`
	Hours       *string `json:"hours,omitempty"`
	Description *string `json:"description,omitempty"`
	Password    *string `json:"password,omitempty"`
}

type CreateProductRequest struct {
	Business uuid.UUID `json:"business" validate:"required"`
	Name     string    `json:"name" validate:"required"`
}

type UpdateProductRequest struct {
	Business *uuid.UUID `json:"business,omitempty"`
	Name     *string    `json:"name,omitempty"`
}

// CreateReviewRequest has no sentiment or is_fake field; clients cannot set them.
type CreateReviewRequest struct {
	Product      uuid.UUID `json:"product" validate:"required"`
	CustomerName string    `json:"customer_name" validate:"required"`
	Text         string    `json:"text" validate:"required"`
	Rating       int       `json:"rating"`
}

type UpdateReviewRequest struct {
	CustomerName *string `json:"customer_name,omitempty"`
	Rating       *int    `json:"rating,omitempty"`
	Text         *string `json:"text,omitempty"`
	Reply        *string `json:"reply,omitempty"`
}

// --- Responses ---

type Business struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Country     string    `json:"country"`
	State       string    `json:"state"`
	Hours       string    `json:"hours"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	IsStaff     bool      `json:"is_staff"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Product struct {
	ID           uuid.UUID `json:"id"`
	Business     uuid.UUID `json:"business"`
	BusinessName string    `json:"business_name"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
}

type Review struct {
	ID           uuid.UUID        `json:"id"`
	Product      uuid.UUID        `json:"product"`
	ProductName  string           `json:"product_name"`
	Business     uuid.UUID        `json:"business"`
	BusinessName string           `json:"business_name"`
	CustomerName string           `json:"customer_name"`
	Rating       int              `json:"rating"`
	Text         string           `json:"text"`
	Sentiment    entity.Sentiment `json:"sentiment"`
	IsFake       bool             `json:"is_fake"`
	Reply        string           `json:"reply"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type AuthResponse struct {
	Tokens
	Business *Business `json:"business"`
}

type ResetResponse struct {
	Message    string `json:"message"`
	Reviews    int64  `json:"reviews"`
	Products   int64  `json:"products"`
	Businesses int64  `json:"businesses"`
}

// --- Mapping ---

func (r *SignupRequest) ToInput() usecase.SignupInput {
	return usecase.SignupInput{
		Name:        r.Name,
		Email:       r.Email,
		Password:    r.Password,
		Phone:       r.Phone,
		Country:     r.Country,
		State:       r.State,
		Hours:       r.Hours,
		Description: r.Description,
	}
}

func (r *UpdateBusinessRequest) ToUpdate() entity.BusinessUpdate {
	return entity.BusinessUpdate{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Country:     r.Country,
		State:       r.State,
		Hours:       r.Hours,
		Description: r.Description,
		Password:    r.Password,
	}
}

func (r *UpdateReviewRequest) ToUpdate() entity.ReviewUpdate {
	return entity.ReviewUpdate{
		CustomerName: r.CustomerName,
		Rating:       r.Rating,
		Text:         r.Text,
		Reply:        r.Reply,
	}
}

func FromBusiness(b *entity.Business) *Business {
	if b == nil {
		return nil
	}

	return &Business{
		ID:          b.ID,
		Name:        b.Name,
		Email:       b.Email,
		Phone:       b.Phone,
		Country:     b.Country,
		State:       b.State,
		Hours:       b.Hours,
		Description: b.Description,
		IsActive:    b.IsActive,
		IsStaff:     b.IsStaff,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func FromBusinesses(bs []*entity.Business) []*Business {
	out := make([]*Business, 0, len(bs))
	for _, b := range bs {
		out = append(out, FromBusiness(b))
	}

	return out
}

func FromProduct(p *entity.Product) *Product {
	if p == nil {
		return nil
	}

	return &Product{
		ID:           p.ID,
		Business:     p.BusinessID,
		BusinessName: p.BusinessName,
		Name:         p.Name,
		CreatedAt:    p.CreatedAt,
	}
}

func FromProducts(ps []*entity.Product) []*Product {
	out := make([]*Product, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProduct(p))
	}

	return out
}

func FromReview(r *entity.Review) *Review {
	if r == nil {
		return nil
	}

	return &Review{
		ID:           r.ID,
		Product:      r.ProductID,
		ProductName:  r.ProductName,
		Business:     r.BusinessID,
		BusinessName: r.BusinessName,
		CustomerName: r.CustomerName,
		Rating:       r.Rating,
		Text:         r.Text,
		Sentiment:    r.Sentiment,
		IsFake:       r.IsFake,
		Reply:        r.Reply,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func FromReviews(rs []*entity.Review) []*Review {
	out := make([]*Review, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromReview(r))
	}

	return out
}

func FromAuthOutput(out *usecase.AuthOutput) *AuthResponse {
	return &AuthResponse{
		Tokens:   Tokens{Access: out.AccessToken, Refresh: out.RefreshToken},
		Business: FromBusiness(out.Business),
	}
}

func FromTokenPair(pair *usecase.TokenPair) *Tokens {
	return &Tokens{Access: pair.AccessToken, Refresh: pair.RefreshToken}
}
