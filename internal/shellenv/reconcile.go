package shellenv

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
)

// identityScriptBody runs as uid 0 inside a docker container. It looks up
// the gid and uid before appending anything, so reruns are no-ops, and it
// switches to the synthetic fallback names when the host names are already
// taken by other ids. The final awk prints whichever passwd name now owns
// the uid.
const identityScriptBody = `group_for_gid="$(awk -F: -v gid="$gid" '$3 == gid { print $1; exit }' /etc/group || true)"
if [ -z "$group_for_gid" ]; then
  if awk -F: -v name="$group" '$1 == name { found=1 } END { exit(found ? 0 : 1) }' /etc/group; then
    group="$fallback_group"
  fi
  printf '%s:x:%s:\n' "$group" "$gid" >> /etc/group
fi

user_for_uid="$(awk -F: -v uid="$uid" '$3 == uid { print $1; exit }' /etc/passwd || true)"
if [ -z "$user_for_uid" ]; then
  if awk -F: -v name="$user" '$1 == name { found=1 } END { exit(found ? 0 : 1) }' /etc/passwd; then
    user="$fallback_user"
  fi

  if command -v zsh >/dev/null 2>&1; then
    shell_path="$(command -v zsh)"
  elif command -v bash >/dev/null 2>&1; then
    shell_path="$(command -v bash)"
  else
    shell_path=/bin/sh
  fi

  printf '%s:x:%s:%s::%s:%s\n' "$user" "$uid" "$gid" "$home" "$shell_path" >> /etc/passwd
fi

awk -F: -v uid="$uid" '$3 == uid { print $1; exit }' /etc/passwd
`

func dockerIdentityScript(id HostIdentity, home string) string {
	header := fmt.Sprintf(`set -eu

uid=%d
gid=%d
user=%s
group=%s
fallback_user=%s
fallback_group=%s
home=%s

`,
		id.UID,
		id.GID,
		quoteShellArg(id.Username),
		quoteShellArg(id.Groupname),
		quoteShellArg(id.FallbackUsername()),
		quoteShellArg(id.FallbackGroupname()),
		quoteShellArg(home),
	)
	return header + identityScriptBody
}

// EnsureDockerIdentity reconciles the container's /etc/passwd and /etc/group
// with the host uid/gid so non-root docker shells see real user and group
// names. It returns the passwd name that owns the uid afterwards. Failure is
// tolerated: the shell still works without the entries, just with numeric
// ids.
func EnsureDockerIdentity(ctx context.Context, run Runner, container, home string) (string, bool) {
	script := dockerIdentityScript(CurrentIdentity(), home)
	out, err := run.Output(ctx, "exec", "--user", "0:0", container, "sh", "-lc", script)
	if err != nil {
		log.Debug("could not reconcile uid/gid identity entries, continuing",
			"container", container, "exit_code", exitCode(err))
		return "", false
	}
	username := lastNonEmptyLine(out)
	if username == "" {
		return "", false
	}
	return username, true
}
