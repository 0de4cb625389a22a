package dto

import (
	"hotel/internal/domains/user/model"
	"hotel/shared"
	"hotel/shared/constant"
)

type CreateUserRequest struct {
	Name     string `label:"user name"     validate:"required,max=30"`
	Password string `label:"user password" validate:"required,max=30"`
}

// ToModel builds a new customer; storedPassword is the value persisted for Password.
func (r *CreateUserRequest) ToModel(storedPassword string) model.User {
	return model.User{
		Name:     r.Name,
		Password: storedPassword,
		UserType: constant.RoleCustomer,
	}
}

type LogInRequest struct {
	UserID   string `label:"user ID"       validate:"required,posint"`
	Password string `label:"user password" validate:"required,max=30"`
}

func (r *LogInRequest) ID() int {
	return shared.ConvertStringToInt(r.UserID)
}
