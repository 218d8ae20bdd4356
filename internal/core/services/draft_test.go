package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"vehicle-checklist-service/internal/core/domain"
	"vehicle-checklist-service/internal/testutil"
)

func TestDraftService_OpenGetDiscard(t *testing.T) {
	svc := NewDraftService(new(testutil.MockImageHost))

	d := svc.Open()
	got, err := svc.Get(d.ID)
	assert.NoError(t, err)
	assert.Equal(t, d.ID, got.ID)

	svc.Discard(d.ID)
	_, err = svc.Get(d.ID)
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestDraftService_Get_NotFound(t *testing.T) {
	svc := NewDraftService(new(testutil.MockImageHost))

	_, err := svc.Get(uuid.New())
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestDraftService_Update(t *testing.T) {
	svc := NewDraftService(new(testutil.MockImageHost))
	d := svc.Open()

	name := "Maria Souza"
	vt := domain.VehicleBitruck
	temp := -3.5
	got, err := svc.Update(d.ID, DraftUpdate{
		DriverName:         &name,
		VehicleType:        &vt,
		InitialTemperature: &temp,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Maria Souza", got.DriverName)
	assert.Equal(t, domain.VehicleBitruck, got.VehicleType)
	assert.Equal(t, -3.5, *got.InitialTemperature)
}

func TestDraftService_Update_ClearTemperatures(t *testing.T) {
	svc := NewDraftService(new(testutil.MockImageHost))
	d := svc.Open()
	temp := 4.0
	d.InitialTemperature = &temp
	d.ProgrammedTemperature = &temp

	got, err := svc.Update(d.ID, DraftUpdate{ClearTemperatures: true})
	assert.NoError(t, err)
	assert.Nil(t, got.InitialTemperature)
	assert.Nil(t, got.ProgrammedTemperature)
}

func TestDraftService_Update_InvalidVehicleType(t *testing.T) {
	svc := NewDraftService(new(testutil.MockImageHost))
	d := svc.Open()

	vt := domain.VehicleClass("tractor")
	_, err := svc.Update(d.ID, DraftUpdate{VehicleType: &vt})
	assert.ErrorIs(t, err, domain.ErrInvalidVehicleType)
}

func TestDraftService_AttachPhotos(t *testing.T) {
	images := new(testutil.MockImageHost)
	svc := NewDraftService(images)
	d := svc.Open()
	_, err := svc.SetItemStatus(d.ID, "lightsWorking", domain.StatusProblem, &domain.ProblemDetails{Description: "broken"})
	assert.NoError(t, err)

	images.On("Upload", mock.Anything, "img-a").Return("https://img.example/a.jpg", nil)
	images.On("Upload", mock.Anything, "img-b").Return("https://img.example/b.jpg", nil)

	result, err := svc.AttachPhotos(context.Background(), d.ID, "lightsWorking", []string{"img-a", "img-b"})
	assert.NoError(t, err)
	assert.Equal(t, 2, result.Attempted)
	assert.Equal(t, 0, result.Failed)
	assert.Len(t, result.URLs, 2)

	p := d.ProblemFor("lightsWorking")
	assert.Equal(t, []string{"https://img.example/a.jpg", "https://img.example/b.jpg"}, p.PhotoURLs)
	assert.Empty(t, d.UploadingKeys())
}

func TestDraftService_AttachPhotos_PartialFailure(t *testing.T) {
	images := new(testutil.MockImageHost)
	svc := NewDraftService(images)
	d := svc.Open()
	_, err := svc.SetItemStatus(d.ID, "lightsWorking", domain.StatusProblem, &domain.ProblemDetails{Description: "broken"})
	assert.NoError(t, err)

	images.On("Upload", mock.Anything, "good").Return("https://img.example/ok.jpg", nil)
	images.On("Upload", mock.Anything, "bad").Return("", domain.ErrUploadFailed)

	result, err := svc.AttachPhotos(context.Background(), d.ID, "lightsWorking", []string{"good", "bad"})
	assert.NoError(t, err)
	assert.Equal(t, 2, result.Attempted)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, []string{"https://img.example/ok.jpg"}, result.URLs)
}

func TestDraftService_AttachPhotos_NoProblem(t *testing.T) {
	svc := NewDraftService(new(testutil.MockImageHost))
	d := svc.Open()

	_, err := svc.AttachPhotos(context.Background(), d.ID, "lightsWorking", []string{"img"})
	assert.ErrorIs(t, err, domain.ErrNoProblemRecorded)
}
