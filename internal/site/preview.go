package site

import (
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"runtime"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ziadkadry99/learnhub/internal/logger"
)

// PreviewHandler serves an exported site from dir. Unknown paths get the
// exported 404.html with a 404 status.
func PreviewHandler(dir string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	files := http.FileServer(http.Dir(dir))
	r.Get("/*", func(w http.ResponseWriter, req *http.Request) {
		p := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+req.URL.Path)))
		if _, err := os.Stat(p); err != nil {
			notFound, readErr := os.ReadFile(filepath.Join(dir, "404.html"))
			if readErr != nil {
				http.NotFound(w, req)
				return
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusNotFound)
			w.Write(notFound)
			return
		}
		files.ServeHTTP(w, req)
	})
	return r
}

// Preview starts a local HTTP file server for an exported site.
func Preview(dir string, port int, open bool, log *logger.Logger) error {
	if log == nil {
		log = logger.Nop()
	}
	addr := fmt.Sprintf(":%d", port)
	url := fmt.Sprintf("http://localhost:%d", port)

	if open {
		go openBrowser(url)
	}

	log.Info("serving exported site", "dir", dir, "url", url)
	fmt.Printf("Serving %s at %s\n", dir, url)
	fmt.Println("Press Ctrl+C to stop.")

	return http.ListenAndServe(addr, PreviewHandler(dir))
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
