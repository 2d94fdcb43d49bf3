package geoip

import (
	"net"

	"github.com/oschwald/geoip2-golang"
)

type GeoIP interface {
	Close() error
	CountryCode(ip string) string
}

type Geo struct {
	countryDB *geoip2.Reader // GeoLite2-Country.mmdb
}

func NewGeo(countryPath string) (*Geo, error) {
	cdb, err := geoip2.Open(countryPath)
	if err != nil {
		return nil, err
	}

	return &Geo{countryDB: cdb}, nil
}

func (g *Geo) Close() error {
	if g.countryDB != nil {
		return g.countryDB.Close()
	}
	return nil
}

// CountryCode 回傳 ISO-2 國碼，查不到時回傳空字串
func (g *Geo) CountryCode(ip string) string {
	parsed := net.ParseIP(ip)
	if parsed == nil || g.countryDB == nil {
		return ""
	}

	rec, err := g.countryDB.Country(parsed)
	if err != nil || rec == nil {
		return ""
	}

	return rec.Country.IsoCode
}

// Noop 在沒有設定 GeoLite 資料庫時使用
type Noop struct{}

func (Noop) Close() error              { return nil }
func (Noop) CountryCode(string) string { return "" }
