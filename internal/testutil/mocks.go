package testutil

import (
	"ratesbot/internal/domain"
	"ratesbot/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockPreferenceRepository is a mock for PreferenceRepository
type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) Load(userID int64) (*domain.UserPreference, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserPreference), args.Error(1)
}

func (m *MockPreferenceRepository) Save(pref *domain.UserPreference) error {
	args := m.Called(pref)
	return args.Error(0)
}

func (m *MockPreferenceRepository) ListUserIDs() ([]int64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

// MockTransport is a mock for service.Transport
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Send(chatID int64, view service.View) (int, error) {
	args := m.Called(chatID, view)
	return args.Int(0), args.Error(1)
}

func (m *MockTransport) Edit(chatID int64, messageID int, view service.View) error {
	args := m.Called(chatID, messageID, view)
	return args.Error(0)
}

func (m *MockTransport) Delete(chatID int64, messageID int) error {
	args := m.Called(chatID, messageID)
	return args.Error(0)
}

// MockRateSource is a mock for handler.RateSource
type MockRateSource struct {
	mock.Mock
}

func (m *MockRateSource) Fetch() ([]string, map[string]float64) {
	args := m.Called()
	var codes []string
	if args.Get(0) != nil {
		codes = args.Get(0).([]string)
	}
	var values map[string]float64
	if args.Get(1) != nil {
		values = args.Get(1).(map[string]float64)
	}
	return codes, values
}
