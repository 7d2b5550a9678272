package itunes

import (
	"net/http"
	"strings"
	"time"

	"gitee.com/kxapp/kxapp-common/httpz"
	"gitee.com/kxapp/kxapp-common/httpz/cookiejar"
	"github.com/appuploader/itunes-service-v3/config"
	"github.com/appuploader/itunes-service-v3/storage"
	"github.com/appuploader/itunes-service-v3/util"
	log "github.com/sirupsen/logrus"
)

/*
*
Client drives the iTunes commerce endpoints for one Apple ID session.
It owns the cookie jar, the device guid and the cached storefront; one
logical session means one Client. Instances are not safe for
unsynchronized use by multiple goroutines, hand out one per user
through manager.GetStoreClientManager.
*/
type Client struct {
	httpClient *http.Client
	jar        *cookiejar.Jar
	cfg        *config.Config

	username string
	guid     string

	dsPersonId string
	scnt       string
	authToken  string

	storefront   string
	storefrontAt time.Time
}

const storefrontTTL = 15 * time.Minute

func NewClient(cfg *config.Config) *Client {
	if cfg == nil {
		cfg = config.Default()
	}
	jar, _ := cookiejar.New(nil)
	httpClient := httpz.NewHttpClient(jar)
	httpClient.Timeout = cfg.Timeout
	return &Client{
		httpClient: httpClient,
		jar:        jar,
		cfg:        cfg,
		guid:       util.DeviceGUID(),
	}
}

/*
*
NewClientForAccount restores the persisted session for the account when
one exists, so a still valid sign in survives a restart. A missing or
unreadable session file just yields a fresh jar.
*/
func NewClientForAccount(username string, cfg *config.Config) *Client {
	client := NewClient(cfg)
	client.username = strings.ToLower(username)
	session, e := storage.Read(client.username)
	if e != nil || session == nil {
		return client
	}
	if len(session.Cookies) > 0 {
		client.jar = cookiejar.NewJarFromJSON(session.Cookies)
		client.httpClient = httpz.NewHttpClient(client.jar)
		client.httpClient.Timeout = client.cfg.Timeout
	}
	client.dsPersonId = session.DsPersonId
	client.scnt = session.Scnt
	client.authToken = session.AuthToken
	return client
}

func (c *Client) GUID() string {
	return c.guid
}

func (c *Client) Username() string {
	return c.username
}

// DsPersonId returns the authenticated person id, empty before a
// successful sign in.
func (c *Client) DsPersonId() string {
	return c.dsPersonId
}

// SetDsPersonId lets a caller resume with an identity obtained
// elsewhere (the route layer keeps dsids across requests).
func (c *Client) SetDsPersonId(dsid string) {
	c.dsPersonId = dsid
}

func (c *Client) saveSession() {
	if c.username == "" {
		return
	}
	cookies, e := c.jar.ToJSON()
	if e != nil {
		log.Errorf("serialize cookie jar fail %s", e.Error())
		return
	}
	session := &storage.Session{
		DsPersonId: c.dsPersonId,
		Scnt:       c.scnt,
		AuthToken:  c.authToken,
		Cookies:    cookies,
	}
	if e := storage.Write(c.username, session); e != nil {
		log.Errorf("save session for %s fail %s", c.username, e.Error())
	}
}

// cookieValue scans the jar for a cookie by name across all domains the
// store endpoints touched.
func (c *Client) cookieValue(name string) string {
	for _, cookie := range c.jar.AllCookies() {
		if cookie.Name == name {
			return cookie.Value
		}
	}
	return ""
}
