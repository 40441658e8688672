// Package registry provides Redfish message registry lookup and formatting.
package registry

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrRegistryNotFound is returned when a registry is not found
	ErrRegistryNotFound = errors.New("registry not found")
	// ErrMessageNotFound is returned when a message is not found in a registry
	ErrMessageNotFound = errors.New("message not found in registry")
)

//go:embed registries/Base.1.13.0.json
var baseRegistryJSON []byte

//go:embed registries/OpenBMC.0.2.json
var openBMCRegistryJSON []byte

// MessageRegistry represents a Redfish message registry
type MessageRegistry struct {
	ID              string                    `json:"Id"`
	Name            string                    `json:"Name"`
	Language        string                    `json:"Language"`
	Description     string                    `json:"Description"`
	RegistryPrefix  string                    `json:"RegistryPrefix"`
	RegistryVersion string                    `json:"RegistryVersion"`
	OwningEntity    string                    `json:"OwningEntity"`
	Messages        map[string]MessageDetails `json:"Messages"`
}

// MessageDetails contains the details of a specific message in the registry
type MessageDetails struct {
	Description     string   `json:"Description"`
	Message         string   `json:"Message"`
	MessageSeverity string   `json:"MessageSeverity"`
	NumberOfArgs    int      `json:"NumberOfArgs"`
	ParamTypes      []string `json:"ParamTypes,omitempty"`
	Resolution      string   `json:"Resolution"`
}

// Manager manages message registries
type Manager struct {
	registries map[string]*MessageRegistry
	mu         sync.RWMutex
}

var (
	manager *Manager
	once    sync.Once
)

// GetManager returns the singleton registry manager instance
func GetManager() *Manager {
	once.Do(func() {
		manager = &Manager{
			registries: make(map[string]*MessageRegistry),
		}
		// The registries are embedded, so a load failure means a build
		// problem rather than a runtime condition.
		_ = manager.load("Base", baseRegistryJSON)
		_ = manager.load("OpenBMC", openBMCRegistryJSON)
	})

	return manager
}

func (m *Manager) load(name string, raw []byte) error {
	var registry MessageRegistry
	if err := json.Unmarshal(raw, &registry); err != nil {
		return fmt.Errorf("failed to unmarshal %s registry: %w", name, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.registries[name] = &registry

	return nil
}

// LookupMessage looks up a message from the registry
func (m *Manager) LookupMessage(registryName, messageKey string) (*Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	registry, exists := m.registries[registryName]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrRegistryNotFound, registryName)
	}

	message, exists := registry.Messages[messageKey]
	if !exists {
		return nil, fmt.Errorf("%w: %s in %s", ErrMessageNotFound, messageKey, registryName)
	}

	return &Message{
		MessageID:       fmt.Sprintf("%s.%s.%s", registry.RegistryPrefix, registry.RegistryVersion, messageKey),
		Message:         message.Message,
		Severity:        message.MessageSeverity,
		Resolution:      message.Resolution,
		RegistryPrefix:  registry.RegistryPrefix,
		RegistryVersion: registry.RegistryVersion,
		NumberOfArgs:    message.NumberOfArgs,
		ParamTypes:      message.ParamTypes,
	}, nil
}

// Message contains the resolved message details from a registry
type Message struct {
	MessageID       string
	Message         string
	Severity        string
	Resolution      string
	RegistryPrefix  string
	RegistryVersion string
	NumberOfArgs    int
	ParamTypes      []string
}

// FormatMessage substitutes the given arguments into the message template.
func (m *Message) FormatMessage(args ...string) string {
	return Format(m.Message, args)
}
