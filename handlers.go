package main

import (
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// ContactFormView is the data behind the contact-form.html fragment.
type ContactFormView struct {
	FormID      string
	Status      string
	Fields      ContactRequest
	ButtonLabel string
	Disabled    bool
	Notice      string
	NoticeKind  string
	Poll        bool
}

func newContactFormView(id string, snap Snapshot) ContactFormView {
	v := ContactFormView{
		FormID:      id,
		Status:      snap.Status.String(),
		Fields:      snap.Fields,
		ButtonLabel: SendLabel,
	}
	switch snap.Status {
	case StatusSubmitting:
		v.ButtonLabel = SendingLabel
		v.Disabled = true
		v.Poll = id != ""
	case StatusSuccess:
		v.ButtonLabel = SentLabel
		v.Notice = SuccessNotice
		v.NoticeKind = "success"
		v.Poll = id != ""
	case StatusError:
		v.Notice = ErrorNotice
		v.NoticeKind = "error"
	}
	return v
}

// PageView is the data behind index.html.
type PageView struct {
	PageContent
	Form ContactFormView
}

type ContactHandler struct {
	forms   *Registry
	metrics *ContactMetrics
	logger  *slog.Logger
}

func NewContactHandler(forms *Registry, metrics *ContactMetrics, logger *slog.Logger) *ContactHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactHandler{forms: forms, metrics: metrics, logger: logger}
}

// Index renders the whole page. The contact form is mounted lazily by its first submit.
func (h *ContactHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", PageView{
		PageContent: Content,
		Form:        newContactFormView("", Snapshot{}),
	})
}

// Submit handles the HTMX form post and answers with the re-rendered form. A post
// without a live instance (first submit, swept or unmounted) mounts a new one, so the
// typed fields always reach the relay or come back to the user.
func (h *ContactHandler) Submit(c *gin.Context) {
	req := ContactRequest{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Message: c.PostForm("message"),
	}
	if err := req.Validate(); err != nil {
		h.metrics.ObserveSubmission(OutcomeInvalid)
		id := c.Param("form")
		snap := Snapshot{}
		if ctrl, ok := h.forms.Get(id); ok {
			snap = ctrl.Snapshot()
		} else {
			id = ""
		}
		view := newContactFormView(id, snap)
		view.Fields = req
		view.Notice = RequiredNotice
		view.NoticeKind = "error"
		c.HTML(http.StatusOK, "contact-form.html", view)
		return
	}

	id, ctrl := h.resolve(c.Param("form"))
	err := ctrl.Submit(c.Request.Context(), req)
	if errors.Is(err, ErrClosed) {
		// swept between lookup and submit
		id, ctrl = h.forms.Mount()
		err = ctrl.Submit(c.Request.Context(), req)
	}
	if err != nil {
		h.logger.Error("contact submit failed", "form_id", id, "error", err)
		view := newContactFormView(id, ctrl.Snapshot())
		view.Fields = req
		view.Notice = ErrorNotice
		view.NoticeKind = "error"
		c.HTML(http.StatusOK, "contact-form.html", view)
		return
	}

	c.HTML(http.StatusOK, "contact-form.html", newContactFormView(id, ctrl.Snapshot()))
}

func (h *ContactHandler) resolve(id string) (string, *Controller) {
	if id != "" {
		if ctrl, ok := h.forms.Get(id); ok {
			return id, ctrl
		}
		h.logger.Info("form instance gone, remounting", "form_id", id)
	}
	return h.forms.Mount()
}

// Status renders only the button and notice; it is polled while a submission is in
// flight or a success notice is showing, and never touches the inputs.
func (h *ContactHandler) Status(c *gin.Context) {
	id := c.Param("form")
	ctrl, ok := h.forms.Get(id)
	if !ok {
		c.HTML(http.StatusOK, "contact-status.html", newContactFormView(id, Snapshot{}))
		return
	}
	ctrl.Touch()
	c.HTML(http.StatusOK, "contact-status.html", newContactFormView(id, ctrl.Snapshot()))
}

// Unmount tears the instance down when the page goes away.
func (h *ContactHandler) Unmount(c *gin.Context) {
	h.forms.Unmount(c.Param("form"))
	c.Status(http.StatusNoContent)
}

func (h *ContactHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"forms":  h.forms.Len(),
	})
}

// requestLogger logs page and contact requests; static assets and health checks are skipped.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/favicon") ||
			path == "/healthz" ||
			path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		logger.Info("request",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

func loadTemplates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"join": strings.Join,
	}).ParseFS(templateFS, "templates/*.html")
}

// NewRouter wires every route. gatherer backs /metrics.
func NewRouter(h *ContactHandler, gatherer prometheus.Gatherer, logger *slog.Logger) (*gin.Engine, error) {
	tmpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))
	r.SetHTMLTemplate(tmpl)

	r.StaticFS("/static", http.FS(static))

	r.GET("/", h.Index)
	r.GET("/healthz", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	contact := r.Group("/contact")
	{
		contact.POST("", h.Submit)
		contact.POST("/:form", h.Submit)
		contact.GET("/:form/status", h.Status)
		contact.DELETE("/:form", h.Unmount)
		// navigator.sendBeacon can only POST
		contact.POST("/:form/unmount", h.Unmount)
	}

	return r, nil
}
