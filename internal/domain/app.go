package domain

import (
	"net/url"
	"sort"
	"strings"
)

// Link is a parameterised deep link. Templates use {query} for a
// query-escaped parameter and {param} for a path-escaped one.
type Link struct {
	Web    string
	Native string
}

type App struct {
	ID           AppID
	Name         string
	WebURL       string
	NativeScheme string
	Links        map[Intent]Link
}

// Environment describes the runtime the action will be launched from.
type Environment struct {
	IsMobileRuntime   bool
	HasNativeLauncher bool
}

func (e Environment) PrefersNative() bool {
	return e.IsMobileRuntime || e.HasNativeLauncher
}

type AppRegistry map[AppID]App

func (r AppRegistry) Get(id AppID) (App, error) {
	app, ok := r[id]
	if !ok {
		return App{}, ErrAppNotFound
	}
	return app, nil
}

// IDs returns the registered app ids in lexical order.
func (r AppRegistry) IDs() []AppID {
	ids := make([]AppID, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (a App) DisplayName() string {
	if strings.TrimSpace(a.Name) != "" {
		return a.Name
	}
	return string(a.ID)
}

// OpenURL resolves the plain "open app" URL. The native scheme wins when the
// environment prefers native launch; apps without a web URL always use it.
func (a App) OpenURL(env Environment) string {
	return pickForm(a.WebURL, a.NativeScheme, env)
}

func (a App) HasLink(op Intent) bool {
	link, ok := a.Links[op]
	return ok && (link.Web != "" || link.Native != "")
}

// LinkURL builds the deep link for op with param substituted. It reports
// false when the app has no link for op.
func (a App) LinkURL(op Intent, param string, env Environment) (string, bool) {
	if !a.HasLink(op) {
		return "", false
	}
	link := a.Links[op]
	return expandLink(pickForm(link.Web, link.Native, env), param), true
}

func pickForm(web, native string, env Environment) string {
	if env.PrefersNative() && native != "" {
		return native
	}
	if web != "" {
		return web
	}
	return native
}

func expandLink(tmpl, param string) string {
	query := strings.ReplaceAll(url.QueryEscape(param), "+", "%20")
	return strings.NewReplacer(
		"{query}", query,
		"{param}", url.PathEscape(param),
	).Replace(tmpl)
}
