package models

import "github.com/google/uuid"

func NewObjectID() string {
	return uuid.NewString()
}
