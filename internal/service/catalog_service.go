package service

import (
	"context"

	"github.com/tutorlane/tutorlane/internal/model"
)

// CatalogService serves the read-only reference data the dashboards browse:
// subjects, classes and teacher profiles.
type CatalogService struct {
	subjectStore SubjectStore
	classStore   ClassStore
	profileStore ProfileStore
}

func NewCatalogService(subjectStore SubjectStore, classStore ClassStore, profileStore ProfileStore) *CatalogService {
	return &CatalogService{
		subjectStore: subjectStore,
		classStore:   classStore,
		profileStore: profileStore,
	}
}

func (s *CatalogService) ListSubjects(ctx context.Context) ([]*model.Subject, error) {
	subjects, err := s.subjectStore.ListActive(ctx)
	if err != nil {
		return nil, model.Store("list subjects", err)
	}
	return subjects, nil
}

func (s *CatalogService) ListClasses(ctx context.Context) ([]*model.Class, error) {
	classes, err := s.classStore.ListActive(ctx)
	if err != nil {
		return nil, model.Store("list classes", err)
	}
	return classes, nil
}

func (s *CatalogService) ListTeachers(ctx context.Context) ([]*model.Profile, error) {
	teachers, err := s.profileStore.ListByRole(ctx, model.RoleTeacher)
	if err != nil {
		return nil, model.Store("list teachers", err)
	}
	return teachers, nil
}
