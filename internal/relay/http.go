package relay

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/Anjelho/lindilove/pkg/kit"
)

// Response is the wire shape the storefront forms expect.
type Response struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

const maxFormBody = 64 << 10

// Server handles the form submission endpoint.
type Server struct {
	To     string
	Sender Sender
	Log    *zap.Logger
}

// Handler accepts a form-encoded POST and relays it. Every outcome answers
// with the {ok, error} JSON shape, including the method check.
func (s *Server) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			kit.WriteJSON(w, http.StatusMethodNotAllowed, Response{Error: "Method not allowed"})
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxFormBody)
		if err := r.ParseForm(); err != nil {
			kit.WriteJSON(w, http.StatusBadRequest, Response{Error: "Invalid input"})
			return
		}

		sub := Normalize(Submission{
			FormType: r.PostFormValue("form_type"),
			Name:     r.PostFormValue("name"),
			Email:    r.PostFormValue("email"),
			Phone:    r.PostFormValue("phone"),
			Product:  r.PostFormValue("product"),
			Message:  r.PostFormValue("message"),
		})

		if err := Validate(sub); err != nil {
			kit.WriteJSON(w, http.StatusBadRequest, Response{Error: "Invalid input"})
			return
		}

		msg := NewMessage(s.To, r.Host, sub)
		if err := s.Sender.Send(r.Context(), msg); err != nil {
			if s.Log != nil {
				s.Log.Error("form relay send failed",
					zap.Error(err),
					zap.String("form_type", sub.FormType),
					zap.String("message_id", msg.ID),
				)
			}
			kit.WriteJSON(w, http.StatusInternalServerError, Response{Error: "Send failed"})
			return
		}

		if s.Log != nil {
			s.Log.Info("form relayed",
				zap.String("form_type", sub.FormType),
				zap.String("message_id", msg.ID),
			)
		}
		kit.WriteJSON(w, http.StatusOK, Response{OK: true})
	}
}
