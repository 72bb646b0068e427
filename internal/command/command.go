package command

import (
	"context"
)

const (
	DefaultDescription = "No description available"
	DefaultCategory    = "No category"
	DefaultUsage       = "No usage examples available"
	DefaultTier        = "Member"
)

// Descriptor describes how a command is invoked and who may invoke it.
type Descriptor struct {
	Name        string
	Description string
	Category    string
	Usage       []string
	Aliases     []string

	// RequiredTier names the lowest permission tier allowed to run the command.
	RequiredTier string
	// RequiredCapabilities let members holding any of them bypass RequiredTier.
	RequiredCapabilities []string

	// GuildOnly and Enabled default to true. Use NotGuildOnly and Disabled to clear them.
	NotGuildOnly bool
	Disabled     bool
}

func (d Descriptor) GuildOnly() bool {
	return !d.NotGuildOnly
}

func (d Descriptor) Enabled() bool {
	return !d.Disabled
}

func (d Descriptor) withDefaults() Descriptor {
	if d.Description == "" {
		d.Description = DefaultDescription
	}
	if d.Category == "" {
		d.Category = DefaultCategory
	}
	if len(d.Usage) == 0 {
		d.Usage = []string{DefaultUsage}
	}
	if d.RequiredTier == "" {
		d.RequiredTier = DefaultTier
	}
	return d
}

type Command interface {
	Descriptor() Descriptor

	// Run executes the command. level is the resolved permission level of the author.
	Run(ctx context.Context, mc *Context, args []string, level int) error
}
