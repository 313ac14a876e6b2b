package entity

import (
	"time"
)

type Product struct {
	ID           string    `json:"id" firestore:"id"`
	Name         string    `json:"name" firestore:"name"`
	Slug         string    `json:"slug" firestore:"slug"`
	Description  string    `json:"description" firestore:"description"`
	Price        float64   `json:"price" firestore:"price"`
	OldPrice     *float64  `json:"old_price,omitempty" firestore:"oldPrice,omitempty"`
	CategoryName string    `json:"category_name" firestore:"categoryName"`
	Images       []string  `json:"images" firestore:"images"`
	Sizes        []string  `json:"sizes" firestore:"sizes"`
	Colors       []string  `json:"colors" firestore:"colors"`
	Features     []string  `json:"features" firestore:"features"`
	Stock        int       `json:"stock" firestore:"stock"`
	Featured     bool      `json:"featured" firestore:"featured"`
	Bestseller   bool      `json:"bestseller" firestore:"bestseller"`
	Active       bool      `json:"active" firestore:"active"`
	Tag          string    `json:"tag,omitempty" firestore:"tag,omitempty"`
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt"`
}
