package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/akinalp/vynk/pkg"
)

// Recover, handler'daki panic'i yakalar, stack ile loglar ve 500 döner.
// http.ErrAbortHandler bilinçli bir iptaldir, tekrar fırlatılır.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}
			if recovered == http.ErrAbortHandler {
				panic(recovered)
			}

			log.Printf("[http] panic recovered method=%s path=%s panic=%v\n%s",
				r.Method, r.URL.Path, recovered, debug.Stack())
			pkg.InternalError(w)
		}()

		next.ServeHTTP(w, r)
	})
}
