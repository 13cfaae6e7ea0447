// Package repository реализует in-memory хранилище каталога активностей.
package repository

import (
	"context"
	"sync"

	"activity-signup-service/internal/model"
)

// RosterRepo хранит каталог активностей в памяти процесса.
// Весь доступ идёт под мьютексом: проверка и мутация списка участников
// выполняются как единое целое, наружу отдаются только копии.
type RosterRepo struct {
	mu         sync.RWMutex
	activities map[string]*model.Activity
}

// NewRosterRepo создаёт хранилище, заполненное стартовым каталогом.
// Seed копируется: дальнейшие изменения исходной мапы на хранилище не влияют.
func NewRosterRepo(seed model.Roster) *RosterRepo {
	activities := make(map[string]*model.Activity, len(seed))
	for name, a := range seed {
		copied := a
		copied.Participants = copyParticipants(a.Participants)
		activities[name] = &copied
	}
	return &RosterRepo{activities: activities}
}

// ListActivities возвращает снимок всего каталога на момент вызова.
func (r *RosterRepo) ListActivities(ctx context.Context) (model.Roster, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make(model.Roster, len(r.activities))
	for name, a := range r.activities {
		copied := *a
		copied.Participants = copyParticipants(a.Participants)
		res[name] = copied
	}
	return res, nil
}

// copyParticipants возвращает независимую копию списка.
// Пустой список остаётся пустым слайсом, а не nil: в JSON он должен
// сериализоваться как [], не как null.
func copyParticipants(src []string) []string {
	dst := make([]string, len(src))
	copy(dst, src)
	return dst
}

// AddParticipant добавляет email в конец списка участников активности.
// Если активность не найдена, возвращает ErrActivityNotFound;
// если email уже записан — ErrAlreadyRegistered. При ошибке состояние не меняется.
func (r *RosterRepo) AddParticipant(ctx context.Context, activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[activityName]
	if !ok {
		return ErrActivityNotFound
	}
	for _, p := range a.Participants {
		if p == email {
			return ErrAlreadyRegistered
		}
	}
	a.Participants = append(a.Participants, email)
	return nil
}

// RemoveParticipant убирает email из списка участников активности.
// Если активность не найдена, возвращает ErrActivityNotFound;
// если email не записан — ErrNotRegistered. При ошибке состояние не меняется.
func (r *RosterRepo) RemoveParticipant(ctx context.Context, activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[activityName]
	if !ok {
		return ErrActivityNotFound
	}
	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			return nil
		}
	}
	return ErrNotRegistered
}
