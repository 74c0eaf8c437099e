package service

import (
	"smart-life-guard/internal/aggregate"
	"smart-life-guard/internal/model"
	"smart-life-guard/internal/query"
	"smart-life-guard/internal/store"
)

type UserFilter struct {
	Search      string
	Role        string
	StatusLabel string
}

type UserService struct {
	users *store.Store[model.User]
	roles *store.Store[model.Role]
	logs  *store.Store[model.OperationLog]
}

func NewUserService(users *store.Store[model.User], roles *store.Store[model.Role], logs *store.Store[model.OperationLog]) *UserService {
	return &UserService{users: users, roles: roles, logs: logs}
}

func (s *UserService) List(filter UserFilter) []model.User {
	return query.Project(s.users.List(),
		query.Text(filter.Search, func(u model.User) []string {
			return []string{u.Name, u.Email, u.ID}
		}),
		query.Equal(filter.Role, func(u model.User) string { return u.Role }),
		query.Equal(filter.StatusLabel, func(u model.User) string { return u.Status.Label() }),
	)
}

func (s *UserService) Get(id string) (model.User, error) {
	user, ok := s.users.Get(id)
	if !ok {
		return model.User{}, model.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) Stats() model.UserStats {
	users := s.users.List()
	counts := aggregate.CountBy(users, func(u model.User) model.UserStatus { return u.Status })

	return model.UserStats{
		Total:    len(users),
		Active:   counts[model.UserActive],
		Inactive: counts[model.UserInactive],
	}
}

func (s *UserService) Roles() []model.Role {
	return s.roles.List()
}

func (s *UserService) OperationLogs() []model.OperationLog {
	return s.logs.List()
}
