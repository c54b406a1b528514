package token

import "sync"

// registryMu guards the dynamic kind maps. Hosts typically register their
// kinds at init() time, but the tree-dump codec may also register kinds
// while decoding, so full locking is required.
var registryMu sync.RWMutex

// nextKindID tracks the next available dynamic kind ID.
var nextKindID = Kind(maxBuiltin)

// dynamicKinds maps registered dynamic kinds to their names.
var dynamicKinds = make(map[Kind]string)

// dynamicNames maps registered names to their kinds.
var dynamicNames = make(map[string]Kind)

// Register registers a token kind under the given name and returns its ID.
// Registering an already-known name returns the existing ID, so hosts and
// the tree-dump codec can call it without coordinating.
func Register(name string) Kind {
	registryMu.Lock()
	defer registryMu.Unlock()

	if k, ok := dynamicNames[name]; ok {
		return k
	}

	nextKindID++
	k := nextKindID
	dynamicKinds[k] = name
	dynamicNames[name] = k
	return k
}

// Lookup returns the kind registered under name.
// Returns ILLEGAL and false if the name is not registered.
func Lookup(name string) (Kind, bool) {
	switch name {
	case "EOF":
		return EOF, true
	case "ILLEGAL":
		return ILLEGAL, true
	}

	registryMu.RLock()
	defer registryMu.RUnlock()
	if k, ok := dynamicNames[name]; ok {
		return k, true
	}
	return ILLEGAL, false
}

// IsDynamic returns true if the kind was dynamically registered.
func (k Kind) IsDynamic() bool {
	return k > maxBuiltin
}

// RegisteredKinds returns a copy of all registered dynamic kinds.
func RegisteredKinds() map[Kind]string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make(map[Kind]string, len(dynamicKinds))
	for k, v := range dynamicKinds {
		result[k] = v
	}
	return result
}

func dynamicName(k Kind) (string, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	name, ok := dynamicKinds[k]
	return name, ok
}
