package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	// Single-node deployment, node id fixed.
	node, _ = snowflake.NewNode(1)
}

// GenUserID issues an id for a user created on first OAuth login.
func GenUserID() int64 {
	return node.Generate().Int64()
}

// GenID issues an id for uploaded images and their object keys.
func GenID() int64 {
	return node.Generate().Int64()
}
