// Package kdbx implements target.Container on top of gokeepasslib.
package kdbx

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tobischo/gokeepasslib/v3"

	"github.com/iudanet/onepif2kdbx/internal/target"
)

// RootGroupName имя корневой группы новой базы
const RootGroupName = "Root"

var _ target.Container = (*Container)(nil)

// Container represents a KeePass database being built in memory.
// The file is written only by Save.
type Container struct {
	root     *group
	path     string
	password string
}

// Create creates a new, empty database that will be saved to path and
// encrypted with password.
func Create(path, password string) (*Container, error) {
	if path == "" {
		return nil, fmt.Errorf("output path is empty")
	}
	if password == "" {
		return nil, fmt.Errorf("master password is empty")
	}

	c := &Container{path: path, password: password}
	c.root = newGroup(c, RootGroupName)
	return c, nil
}

// Path returns the output file path.
func (c *Container) Path() string {
	return c.path
}

// Root returns the root group.
func (c *Container) Root() target.GroupHandle {
	return c.root
}

// AddGroup creates a group under parent.
func (c *Container) AddGroup(parent target.GroupHandle, name string) (target.GroupHandle, error) {
	if c == nil || c.root == nil {
		return nil, target.ErrNotCreated
	}
	p, err := c.own(parent)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, target.ErrEmptyGroupName
	}

	g := newGroup(c, name)
	p.children = append(p.children, g)
	return g, nil
}

// FindGroupByName returns the first group with the given name, depth first
// starting at the root.
func (c *Container) FindGroupByName(name string) (target.GroupHandle, bool) {
	if c == nil || c.root == nil {
		return nil, false
	}
	if g := c.root.find(name); g != nil {
		return g, true
	}
	return nil, false
}

// AddEntry creates an entry with empty username and password in group.
func (c *Container) AddEntry(parent target.GroupHandle, title string) (target.EntryHandle, error) {
	if c == nil || c.root == nil {
		return nil, target.ErrNotCreated
	}
	g, err := c.own(parent)
	if err != nil {
		return nil, err
	}

	e := newEntry(title)
	g.entries = append(g.entries, e)
	return e, nil
}

// Save encrypts the database and writes it to the output path.
// The file is replaced atomically; on error the previous file is left intact.
// Save may be called again after more changes.
func (c *Container) Save() error {
	if c == nil || c.root == nil {
		return target.ErrNotCreated
	}

	db := gokeepasslib.NewDatabase()
	db.Credentials = gokeepasslib.NewPasswordCredentials(c.password)
	db.Content.Root = &gokeepasslib.RootData{
		Groups: []gokeepasslib.Group{c.root.build()},
	}

	// Шифруем защищенные значения потоковым шифром перед записью
	if err := db.LockProtectedEntries(); err != nil {
		return fmt.Errorf("failed to protect values: %w", err)
	}

	dir := filepath.Dir(c.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(c.path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// после успешного Rename файла уже нет
		_ = os.Remove(tmpName)
	}()

	if err := gokeepasslib.NewEncoder(tmp).Encode(db); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to encode database: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return fmt.Errorf("failed to set output file mode: %w", err)
	}
	if err := os.Rename(tmpName, c.path); err != nil {
		return fmt.Errorf("failed to move output file into place: %w", err)
	}

	return nil
}

func (c *Container) own(h target.GroupHandle) (*group, error) {
	g, ok := h.(*group)
	if !ok || g == nil || g.owner != c {
		return nil, target.ErrForeignGroup
	}
	return g, nil
}
