package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"voyago/internal/models/db_models"
	"voyago/internal/store"
	"voyago/pkg/utils"
)

type DriverServiceInterface interface {
	ListDrivers() []db_models.Driver
	GetDriverByID(id string) (db_models.Driver, error)
	CreateDriver(actor string, driver db_models.Driver) (db_models.Driver, error)
	UpdateDriver(actor string, driver db_models.Driver) (db_models.Driver, error)
	DeleteDriver(actor, id string) error
	UpdateDriverStatus(actor, id string, status db_models.DriverStatus) (db_models.Driver, error)
}

type DriverService struct {
	store *store.Store
}

func NewDriverService(s *store.Store) DriverServiceInterface {
	return &DriverService{store: s}
}

func (d *DriverService) ListDrivers() []db_models.Driver {
	return d.store.Drivers.List()
}

func (d *DriverService) GetDriverByID(id string) (db_models.Driver, error) {
	return d.store.Drivers.Get(id)
}

func (d *DriverService) CreateDriver(actor string, driver db_models.Driver) (db_models.Driver, error) {
	if strings.TrimSpace(driver.Name) == "" || strings.TrimSpace(driver.Phone) == "" {
		return db_models.Driver{}, utils.ErrInvalidInput
	}

	if driver.ID == "" {
		driver.ID = "drv-" + uuid.New().String()
	}
	if driver.Status == "" {
		driver.Status = db_models.DriverAvailable
	}
	if !store.IsDriverStatus(driver.Status) {
		return db_models.Driver{}, utils.ErrUnknownStatus
	}

	if err := d.store.Drivers.Add(driver); err != nil {
		return db_models.Driver{}, err
	}

	_, _ = d.store.RecordActivity(actor, "create",
		fmt.Sprintf("Added driver %q", driver.Name),
		db_models.TargetDriver, driver.ID, nil)

	return driver, nil
}

func (d *DriverService) UpdateDriver(actor string, driver db_models.Driver) (db_models.Driver, error) {
	previous, err := d.store.Drivers.Get(driver.ID)
	if err != nil {
		return db_models.Driver{}, err
	}
	if !store.IsDriverStatus(driver.Status) {
		return db_models.Driver{}, utils.ErrUnknownStatus
	}

	if err := d.store.Drivers.Update(driver); err != nil {
		return db_models.Driver{}, err
	}

	_, _ = d.store.RecordActivity(actor, "update",
		fmt.Sprintf("Updated driver %q", driver.Name),
		db_models.TargetDriver, driver.ID, previous)

	return driver, nil
}

func (d *DriverService) DeleteDriver(actor, id string) error {
	previous, err := d.store.Drivers.Get(id)
	if err != nil {
		return err
	}

	if err := d.store.Drivers.Delete(id); err != nil {
		return err
	}

	_, _ = d.store.RecordActivity(actor, "delete",
		fmt.Sprintf("Removed driver %q", previous.Name),
		db_models.TargetDriver, id, previous)

	return nil
}

func (d *DriverService) UpdateDriverStatus(actor, id string, status db_models.DriverStatus) (db_models.Driver, error) {
	previous, err := d.store.Drivers.Get(id)
	if err != nil {
		return db_models.Driver{}, err
	}

	driver, err := d.store.UpdateDriverStatus(id, status)
	if err != nil {
		return db_models.Driver{}, err
	}

	_, _ = d.store.RecordActivity(actor, "status",
		fmt.Sprintf("Driver %q: %s -> %s", driver.Name, previous.Status, status),
		db_models.TargetDriver, id, previous)

	return driver, nil
}
