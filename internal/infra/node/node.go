package node

import (
	"formbuilder-server/internal/infra/utils"
	"log/slog"
	"os"
	"sync"
)

// Node identifies the running process in logs.
type Node struct {
	ID         string
	Hostname   string
	Version    string
	CommitHash string
}

// Set at build time with -ldflags "-X formbuilder-server/internal/infra/node.Version=...".
var Version = "development"
var CommitHash = "unknown"

var (
	nodeID       string
	nodeIDOnce   sync.Once
	hostname     string
	hostnameOnce sync.Once
)

func GetNodeInfo() *Node {
	return &Node{
		ID:         getNodeID(),
		Hostname:   getHostname(),
		Version:    Version,
		CommitHash: CommitHash,
	}
}

// LogAttrs returns the attributes attached to every log record of the process.
func (n *Node) LogAttrs() []any {
	return []any{
		slog.String("node_id", n.ID),
		slog.String("version", n.Version),
		slog.String("commit", n.CommitHash),
	}
}

func getNodeID() string {
	nodeIDOnce.Do(func() {
		nodeID = utils.GenerateUUID()
	})
	return nodeID
}

func getHostname() string {
	hostnameOnce.Do(func() {
		name, err := os.Hostname()
		if err != nil || name == "" {
			name = "localhost"
		}
		hostname = name
	})
	return hostname
}
