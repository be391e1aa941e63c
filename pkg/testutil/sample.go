package testutil

import (
	"context"
	"reflect"
	"time"

	"github.com/ethantsaox/jobflow/internal/entity"
	"github.com/ethantsaox/jobflow/internal/repository"
	"github.com/google/uuid"
)

// SampleUser creates a new user with randomized fields. The sample can be
// overwritten by non-zero fields of init.
func SampleUser(ctx context.Context, init *entity.User) (entity.User, error) {
	sample := &entity.User{
		Base:      entity.Base{ID: uuid.NewString()},
		Name:      uuid.NewString(),
		Email:     uuid.NewString() + "@example.com",
		DailyGoal: 5,
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := repository.NewUserRepository().Create(ctx, sample); err != nil {
		return *sample, err
	}

	return *sample, nil
}

// SampleApplication creates a new job application owned by userID.
func SampleApplication(
	ctx context.Context, userID string, init *entity.JobApplication,
) (entity.JobApplication, error) {
	sample := &entity.JobApplication{
		Base:        entity.Base{ID: uuid.NewString()},
		UserID:      userID,
		CompanyName: uuid.NewString(),
		Position:    uuid.NewString(),
		Status:      entity.Applied,
		AppliedAt:   time.Now(),
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := repository.NewJobApplicationRepository().Create(ctx, sample); err != nil {
		return *sample, err
	}

	return *sample, nil
}

func overwriteFields[T any](origin *T, overwrite T) {
	originValue := reflect.ValueOf(origin).Elem()
	overwriteValue := reflect.ValueOf(overwrite)

	for i := 0; i < overwriteValue.NumField(); i++ {
		overwriteField := overwriteValue.Field(i)
		if overwriteField.Interface() != reflect.Zero(overwriteField.Type()).Interface() {
			originValue.Field(i).Set(overwriteField)
		}
	}
}
