package client

import "time"

// User represents an account on the platform
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Bio   string `json:"bio,omitempty"`
}

// Trainer is the public slice of a trainer's account
type Trainer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Bio   string `json:"bio,omitempty"`
}

// Plan represents a workout plan. Gated fields (description, duration,
// updatedAt, isSubscribed) are absent when the caller has preview access.
type Plan struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Price        float64    `json:"price"`
	Duration     int        `json:"duration,omitempty"`
	Trainer      *Trainer   `json:"trainer,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
	IsSubscribed *bool      `json:"isSubscribed,omitempty"`
}

// Follow represents a follow relationship
type Follow struct {
	ID         int64     `json:"id"`
	FollowerID int64     `json:"followerId"`
	TrainerID  int64     `json:"trainerId"`
	FollowedAt time.Time `json:"followedAt"`
	Trainer    *Trainer  `json:"trainer,omitempty"`
}

// Subscription represents a purchased plan
type Subscription struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	PlanID      int64     `json:"planId"`
	PurchasedAt time.Time `json:"purchasedAt"`
	Status      string    `json:"status"`
	Plan        *Plan     `json:"plan,omitempty"`
}

// TrainerProfile is a trainer's public page with their plans
type TrainerProfile struct {
	Trainer     Trainer `json:"trainer"`
	Plans       []Plan  `json:"plans"`
	IsFollowing bool    `json:"isFollowing"`
}

// AuthResponse is returned by signup and login
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
