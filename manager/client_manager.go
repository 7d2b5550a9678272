package manager

import (
	"strings"
	"sync"

	"github.com/appuploader/itunes-service-v3/config"
	"github.com/appuploader/itunes-service-v3/itunes"
)

/*
*
StoreClientManager hands out one itunes.Client per account. The client
owns the cookie jar, and a jar must never be shared across unrelated
Apple ID sessions, so a deployment serving several users concurrently
goes through this registry instead of constructing clients ad hoc.
*/
type StoreClientManager struct {
	clients map[string]*itunes.Client
	cfg     *config.Config
	mu      sync.Mutex
}

var (
	storeManagerInstance *StoreClientManager
	onceStoreManager     sync.Once
)

func GetStoreClientManager() *StoreClientManager {
	onceStoreManager.Do(func() {
		storeManagerInstance = &StoreClientManager{
			clients: make(map[string]*itunes.Client),
			cfg:     config.Load(),
		}
	})
	return storeManagerInstance
}

// ClientFor returns the client bound to the account, creating one (and
// restoring its persisted session) on first use.
func (m *StoreClientManager) ClientFor(userName string) *itunes.Client {
	userName = strings.ToLower(userName)
	m.mu.Lock()
	defer m.mu.Unlock()
	if client, ok := m.clients[userName]; ok {
		return client
	}
	client := itunes.NewClientForAccount(userName, m.cfg)
	m.clients[userName] = client
	return client
}

// Drop forgets the account's client so the next ClientFor starts a
// fresh session.
func (m *StoreClientManager) Drop(userName string) {
	userName = strings.ToLower(userName)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.clients, userName)
}
