package convert

import (
	"encoding/json"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/onepif2kdbx/internal/models"
	"github.com/iudanet/onepif2kdbx/internal/onepif"
	"github.com/iudanet/onepif2kdbx/internal/registry"
)

// Имена дополнительных полей, понятные плагинам браузерной интеграции
const (
	PropertyAltURL       = "KP2A_URL"
	PropertyHostSettings = "KeePassHttp Settings"
	PropertyTOTPSecret   = "TimeOtp-Secret-Base32"
	PropertyOTP          = "otp"
	PropertyOTPTitle     = "otp_title"

	// WebFieldPrefix marks custom properties that came from a web form.
	WebFieldPrefix = "KPH: "

	totpFieldPrefix = "TOTP_"
	otpURIFormat    = "otpauth://totp/Sample:username?secret=%s&algorithm=SHA1&digits=6&period=30&issuer=Sample"
)

// reservedNames are KeePass standard fields; a custom property must not shadow them.
var reservedNames = []string{"Title", "UserName", "Password", "URL", "Notes"}

// hostSettings is the KeePassHttp per-entry site configuration.
type hostSettings struct {
	Allow []string `json:"Allow"`
	Deny  []string `json:"Deny"`
	Realm string   `json:"Realm"`
}

// Projector maps a property set onto KeePass entry slots.
type Projector struct{}

// NewProjector creates a projector.
func NewProjector() *Projector {
	return &Projector{}
}

// projection tracks which properties were already used for a special slot.
type projection struct {
	rec    *onepif.Record
	props  *PropertySet
	entry  *models.Entry
	done   map[string]bool
	custom map[string]bool
}

// Project builds the entry for rec. typ must be the registry type of rec.
func (p *Projector) Project(rec *onepif.Record, props *PropertySet, typ registry.Type) (*models.Entry, error) {
	if typ.ID != rec.TypeName {
		return nil, fmt.Errorf("%w: %q (classified as %q)", registry.ErrUnknownRecordType, rec.TypeName, typ.ID)
	}

	pr := &projection{
		rec:    rec,
		props:  props,
		entry:  &models.Entry{Title: rec.Title, UUID: rec.UUID},
		done:   map[string]bool{"title": true, "uuid": true},
		custom: make(map[string]bool),
	}
	for _, name := range reservedNames {
		pr.custom[name] = true
	}
	e := pr.entry

	// группа по типу, удаленные записи в корзину
	e.Group = typ.Group
	if rec.Trashed {
		e.Group = models.RecycleBinGroup
	}
	e.Icon = int64(typ.Icon)

	if err := pr.urls(); err != nil {
		return nil, err
	}

	e.Tags = slices.Clone(rec.OpenContents.Tags)

	pr.totp()

	if notes, ok := pr.takeScalar("notesPlain"); ok {
		e.Notes = notes.Value
	}

	if rec.CreatedAt != 0 {
		e.CreatedAt = time.Unix(rec.CreatedAt, 0)
	}
	if rec.UpdatedAt != 0 {
		e.ModifiedAt = time.Unix(rec.UpdatedAt, 0)
	}

	e.Username = pr.firstCandidate(typ.Username)
	e.Password = pr.firstCandidate(typ.Password)

	for _, h := range rec.SecureContents.PasswordHistory {
		e.History = append(e.History, models.HistoryEntry{Time: time.Unix(h.Time, 0), Password: h.Value})
	}

	for _, prop := range props.All() {
		if pr.done[prop.Name] || typ.IsIgnored(prop.Name) || prop.Name == "Password" {
			continue
		}
		name := prop.Title
		if prop.IsWebField() {
			name = WebFieldPrefix + name
		}
		pr.setCustom(name, prop.Value, prop.Protected)
	}

	return e, nil
}

// urls collects location, URLs[] and the URL scalar. The first one becomes
// the primary URL, the others go to KP2A_URL, KP2A_URL_2, ...
func (pr *projection) urls() error {
	var all []string
	if pr.rec.Location != "" {
		all = append(all, pr.rec.Location)
	}
	pr.takeScalar("location")
	all = append(all, pr.rec.SecureContents.URLs...)
	all = append(all, pr.rec.OpenContents.URLs...)
	if u, ok := pr.takeScalar("URL"); ok && u.Value != "" {
		all = append(all, u.Value)
	}

	hosts := []string{}
	for i, u := range all {
		pr.entry.AddURL(u)
		if i > 0 {
			name := PropertyAltURL
			if i > 1 {
				name += "_" + strconv.Itoa(i)
			}
			pr.setCustom(name, u, false)
		}
		if h := hostname(u); h != "" && !slices.Contains(hosts, h) {
			hosts = append(hosts, h)
		}
	}

	if len(all) == 0 {
		// форма входа без URL: берем адрес, куда она отправлялась
		if action, ok := pr.takeScalar("htmlAction"); ok && action.Value != "" {
			pr.entry.AddURL(action.Value)
		}
		return nil
	}

	settings, err := json.Marshal(hostSettings{Allow: hosts, Deny: []string{}, Realm: ""})
	if err != nil {
		return fmt.Errorf("failed to encode host settings: %w", err)
	}
	pr.setCustom(PropertyHostSettings, string(settings), false)
	return nil
}

// totp turns every section field named TOTP_* into an otp property group.
func (pr *projection) totp() {
	n := 0
	for _, prop := range pr.props.All() {
		if prop.Origin != OriginSection || !strings.HasPrefix(prop.Key, totpFieldPrefix) || pr.done[prop.Name] {
			continue
		}
		pr.done[prop.Name] = true
		n++

		suffix := ""
		if n > 1 {
			suffix = "_" + strconv.Itoa(n)
		}
		secret := models.TOTPSecret{Secret: prop.Value, Title: prop.Label}
		pr.entry.TOTPSecrets = append(pr.entry.TOTPSecrets, secret)

		pr.setCustom(PropertyTOTPSecret+suffix, secret.Secret, true)
		pr.setCustom(PropertyOTP+suffix, fmt.Sprintf(otpURIFormat, url.QueryEscape(secret.Secret)), true)
		if secret.Title != "" {
			pr.setCustom(PropertyOTPTitle+suffix, secret.Title, false)
		}
	}
}

// firstCandidate returns the value of the first candidate property with a
// non-empty value and marks it used.
func (pr *projection) firstCandidate(candidates []string) string {
	for _, name := range candidates {
		prop, ok := pr.props.Get(name)
		if !ok || pr.done[name] || prop.Value == "" {
			continue
		}
		pr.done[name] = true
		return prop.Value
	}
	return ""
}

// takeScalar marks the first scalar with the given source key as used.
func (pr *projection) takeScalar(key string) (Property, bool) {
	for _, prop := range pr.props.All() {
		if prop.Origin == OriginScalar && prop.Key == key && !pr.done[prop.Name] {
			pr.done[prop.Name] = true
			return prop, true
		}
	}
	return Property{}, false
}

// setCustom sets a custom property, suffixing the name if it is already used
// on this entry or names a standard field.
func (pr *projection) setCustom(name, value string, protected bool) {
	unique := name
	for i := 1; pr.custom[unique]; i++ {
		unique = name + "_" + strconv.Itoa(i)
	}
	pr.custom[unique] = true
	pr.entry.SetCustomProperty(unique, value, protected)
}

// hostname returns the lower-cased host of u. Bare host names without a
// scheme are accepted too.
func hostname(u string) string {
	parsed, err := url.Parse(u)
	if err == nil && parsed.Host == "" && !strings.Contains(u, "://") {
		parsed, err = url.Parse("//" + u)
	}
	if err != nil {
		return ""
	}
	return strings.ToLower(parsed.Hostname())
}
