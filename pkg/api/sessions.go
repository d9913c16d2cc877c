package api

import (
	"sync"
	"time"

	"github.com/farescout/farescout/pkg/presenter"
)

// Session timeout - counters for sessions with no activity for this duration
// are discarded.
const sessionTimeout = 30 * time.Minute

// SessionManager keeps per-UI-session counters alive between searches.
type SessionManager struct {
	counters     map[string]*presenter.SessionCounters
	lastActivity map[string]time.Time
	mu           sync.RWMutex
}

var globalSessionManager *SessionManager
var sessionOnce sync.Once

// GetSessionManager returns the singleton session manager
func GetSessionManager() *SessionManager {
	sessionOnce.Do(func() {
		globalSessionManager = NewSessionManager()
		// Start background cleanup goroutine
		go globalSessionManager.cleanupStaleSessionsLoop()
	})
	return globalSessionManager
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		counters:     make(map[string]*presenter.SessionCounters),
		lastActivity: make(map[string]time.Time),
	}
}

// GetOrCreate returns the counters for a session, creating them zeroed on
// first use.
func (sm *SessionManager) GetOrCreate(sessionID string) *presenter.SessionCounters {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.lastActivity[sessionID] = time.Now()
	if c, exists := sm.counters[sessionID]; exists {
		return c
	}
	c := presenter.NewSessionCounters()
	sm.counters[sessionID] = c
	return c
}

// Lookup returns the counters for a session if they exist.
func (sm *SessionManager) Lookup(sessionID string) (*presenter.SessionCounters, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	c, ok := sm.counters[sessionID]
	return c, ok
}

func (sm *SessionManager) cleanupStaleSessionsLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		sm.cleanupStaleSessions()
	}
}

func (sm *SessionManager) cleanupStaleSessions() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	now := time.Now()
	for sessionID, lastActive := range sm.lastActivity {
		if now.Sub(lastActive) > sessionTimeout {
			delete(sm.counters, sessionID)
			delete(sm.lastActivity, sessionID)
		}
	}
}
