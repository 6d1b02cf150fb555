package shellenv

import (
	"fmt"
	"os"
	"os/user"
	"regexp"
	"strconv"
)

// identityNamePattern limits user and group names to what /etc/passwd and
// /etc/group entries can carry without quoting surprises.
var identityNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// HostIdentity captures the invoking user's uid/gid pair and names, as
// mirrored into containers for non-root shells.
type HostIdentity struct {
	UID       int
	GID       int
	Username  string
	Groupname string
}

// FallbackUsername is the synthetic passwd name used when the host username
// is unknown or not representable.
func (id HostIdentity) FallbackUsername() string {
	return "mimuser" + strconv.Itoa(id.UID)
}

// FallbackGroupname is the synthetic group name used when the host group
// name is unknown or not representable.
func (id HostIdentity) FallbackGroupname() string {
	return "mimgroup" + strconv.Itoa(id.GID)
}

// UserSpec renders the identity as a uid:gid pair for --user flags.
func (id HostIdentity) UserSpec() string {
	return fmt.Sprintf("%d:%d", id.UID, id.GID)
}

// CurrentIdentity resolves the invoking user's identity. Name lookups fall
// back to the USER and GROUP environment variables and then to synthetic
// mimuser/mimgroup names, so the result always carries usable names.
func CurrentIdentity() HostIdentity {
	id := HostIdentity{UID: os.Getuid(), GID: os.Getgid()}

	username := ""
	if u, err := user.LookupId(strconv.Itoa(id.UID)); err == nil {
		username = u.Username
	} else if env := os.Getenv("USER"); env != "" {
		username = env
	}
	id.Username = sanitizeIdentityName(username, id.FallbackUsername())

	groupname := ""
	if g, err := user.LookupGroupId(strconv.Itoa(id.GID)); err == nil {
		groupname = g.Name
	} else if env := os.Getenv("GROUP"); env != "" {
		groupname = env
	}
	id.Groupname = sanitizeIdentityName(groupname, id.FallbackGroupname())

	return id
}

func sanitizeIdentityName(name, fallback string) string {
	if identityNamePattern.MatchString(name) {
		return name
	}
	return fallback
}
