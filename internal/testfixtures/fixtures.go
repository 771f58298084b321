// Package testfixtures serves canned API records for tests across the module.
package testfixtures

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed data/*.json
var files embed.FS

// Names of the embedded records.
const (
	Device        = "device"
	DeviceApps    = "device_apps"
	User          = "user"
	UserGroup     = "user_group"
	DeviceGroup   = "device_group"
	Location      = "location"
	App           = "app"
	AppEnterprise = "app_enterprise"
	Profile       = "profile"
)

// Raw returns the embedded JSON of a record.
func Raw(name string) []byte {
	b, err := files.ReadFile("data/" + name + ".json")
	if err != nil {
		panic(fmt.Sprintf("testfixtures: %v", err))
	}
	return b
}

// Record decodes a record into a mutable map, numbers as json.Number.
func Record(name string) map[string]any {
	var m map[string]any
	decode(Raw(name), &m)
	return m
}

// Records decodes a JSON array record.
func Records(name string) []any {
	var s []any
	decode(Raw(name), &s)
	return s
}

// DeviceWithApps is the device record carrying its installed-app list.
func DeviceWithApps() map[string]any {
	d := Record(Device)
	d["apps"] = Records(DeviceApps)
	return d
}

// Single wraps one record as {"code":200,"<key>":record}.
func Single(key string, record any) map[string]any {
	return map[string]any{"code": json.Number("200"), key: record}
}

// List wraps records as {"code":200,"count":n,"<key>":[...]}.
func List(key string, records ...any) map[string]any {
	if records == nil {
		records = []any{}
	}
	return map[string]any{
		"code":  json.Number("200"),
		"count": json.Number(fmt.Sprint(len(records))),
		key:     records,
	}
}

// Ack is the acknowledgement body of mutating routes.
func Ack(message string) map[string]any {
	return map[string]any{"code": json.Number("200"), "message": message}
}

// JSON marshals v, panicking on failure.
func JSON(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("testfixtures: %v", err))
	}
	return b
}

func decode(b []byte, into any) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(into); err != nil {
		panic(fmt.Sprintf("testfixtures: %v", err))
	}
}
