package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleCustomer = "customer"
	RoleAgent    = "agent"
	RoleAdmin    = "admin"
)

func ValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleAgent, RoleAdmin:
		return true
	default:
		return false
	}
}

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email      string             `bson:"email" json:"email"`
	Name       string             `bson:"name" json:"name"`
	Role       string             `bson:"role" json:"role"`
	Photo      string             `bson:"photo,omitempty" json:"photo,omitempty"`
	NID        string             `bson:"nid,omitempty" json:"nid,omitempty"`
	FatherName string             `bson:"fatherName,omitempty" json:"fatherName,omitempty"`
	MotherName string             `bson:"motherName,omitempty" json:"motherName,omitempty"`
	Address    string             `bson:"address,omitempty" json:"address,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
