// Package service содержит бизнес-логику записи и отписки участников активностей.
package service

import (
	"context"
	"errors"
	"fmt"

	"activity-signup-service/internal/model"
	"activity-signup-service/internal/repository"
)

// RosterRepository описывает контракт хранилища каталога для бизнес-слоя.
type RosterRepository interface {
	ListActivities(ctx context.Context) (model.Roster, error)
	AddParticipant(ctx context.Context, activityName, email string) error
	RemoveParticipant(ctx context.Context, activityName, email string) error
}

// RosterService инкапсулирует бизнес-логику трёх операций каталога:
// список активностей, запись участника и отписка участника.
type RosterService struct {
	repo RosterRepository
}

// NewRosterService создаёт новый сервис для операций над каталогом.
func NewRosterService(repo RosterRepository) *RosterService {
	return &RosterService{repo: repo}
}

// ListActivities возвращает снимок всего каталога.
func (s *RosterService) ListActivities(ctx context.Context) (model.Roster, error) {
	roster, err := s.repo.ListActivities(ctx)
	if err != nil {
		return nil, &AppError{
			Code:    "INTERNAL",
			Message: "failed to list activities",
			Status:  500,
			Err:     err,
		}
	}
	return roster, nil
}

// Signup записывает email на активность. Вместимость (max_participants)
// не проверяется: поле справочное, переполнение не отклоняется.
func (s *RosterService) Signup(ctx context.Context, activityName, email string) error {
	if activityName == "" || email == "" {
		return ErrBadRequest("activity name and email are required")
	}

	err := s.repo.AddParticipant(ctx, activityName, email)
	if err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return ErrNotFound("Activity not found")
		}
		if errors.Is(err, repository.ErrAlreadyRegistered) {
			return ErrDomain("ALREADY_SIGNED_UP",
				fmt.Sprintf("%s is already signed up for %s", email, activityName))
		}
		return &AppError{
			Code:    "INTERNAL",
			Message: "failed to sign up participant",
			Status:  500,
			Err:     err,
		}
	}
	return nil
}

// Unregister убирает email из участников активности.
func (s *RosterService) Unregister(ctx context.Context, activityName, email string) error {
	if activityName == "" || email == "" {
		return ErrBadRequest("activity name and email are required")
	}

	err := s.repo.RemoveParticipant(ctx, activityName, email)
	if err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return ErrNotFound("Activity not found")
		}
		if errors.Is(err, repository.ErrNotRegistered) {
			return ErrDomain("NOT_REGISTERED",
				fmt.Sprintf("%s is not registered for %s", email, activityName))
		}
		return &AppError{
			Code:    "INTERNAL",
			Message: "failed to unregister participant",
			Status:  500,
			Err:     err,
		}
	}
	return nil
}
