package preflight

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"hoarder/internal/config"
	"hoarder/internal/identification/tmdb"
)

const tmdbCheckTimeout = 10 * time.Second

// CheckTMDB verifies that TMDB is reachable and the key is accepted. It runs
// one search with a single attempt.
func CheckTMDB(ctx context.Context, cfg config.TMDB) Result {
	const name = "TMDB"

	if strings.TrimSpace(cfg.APIKey) == "" {
		return Result{Name: name, Detail: "API key missing (video files will be skipped)"}
	}

	client, err := tmdb.New(cfg.APIKey, cfg.BaseURL, cfg.Language, tmdb.WithTimeout(tmdbCheckTimeout))
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}

	checkCtx, cancel := context.WithTimeout(ctx, tmdbCheckTimeout)
	defer cancel()
	if _, err := client.SearchMovie(checkCtx, "Metropolis"); err != nil {
		return Result{Name: name, Detail: summarizeTMDBError(err)}
	}
	return Result{Name: name, Passed: true, Detail: "API reachable"}
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckWritableLocation accepts a directory that does not exist yet as long
// as its nearest existing ancestor is writable, since it is created on first
// use.
func CheckWritableLocation(name, path string) Result {
	if _, err := os.Stat(path); err == nil {
		return CheckDirectoryAccess(name, path)
	}
	for ancestor := filepath.Dir(path); ; ancestor = filepath.Dir(ancestor) {
		if _, err := os.Stat(ancestor); err == nil {
			res := CheckDirectoryAccess(name, ancestor)
			if res.Passed {
				res.Detail = fmt.Sprintf("%s (created on first use)", path)
			}
			return res
		}
		if parent := filepath.Dir(ancestor); parent == ancestor {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: no existing parent)", path)}
		}
	}
}

func summarizeTMDBError(err error) string {
	if errors.Is(err, tmdb.ErrUnauthorized) {
		return "auth failed (invalid api key)"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "check timed out (TMDB unresponsive)"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "check timed out (TMDB unreachable)"
	}
	return err.Error()
}
