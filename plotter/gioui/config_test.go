package gioui_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pickupplot/pickupplot/plotter/gioui"
)

// userConfig points os.UserConfigDir to a temporary directory and writes the
// given files there.
func userConfig(t *testing.T, files map[string]string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)
	configDir, err := os.UserConfigDir()
	if err != nil {
		t.Fatalf("UserConfigDir: %v", err)
	}
	appDir := filepath.Join(configDir, gioui.ConfigDir)
	if err := os.MkdirAll(appDir, 0755); err != nil {
		t.Fatal(err)
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(appDir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

type testConfig struct {
	Name  string
	Count int
}

func TestReadConfigDefaults(t *testing.T) {
	userConfig(t, nil)
	var c testConfig
	if warn := gioui.ReadConfig([]byte("name: default\ncount: 3\n"), "test.yml", &c); warn != nil {
		t.Fatalf("ReadConfig: %v", warn)
	}
	if c.Name != "default" || c.Count != 3 {
		t.Fatalf("config = %+v", c)
	}
}

func TestReadConfigUserOverride(t *testing.T) {
	userConfig(t, map[string]string{"test.yml": "count: 5\n"})
	var c testConfig
	if warn := gioui.ReadConfig([]byte("name: default\ncount: 3\n"), "test.yml", &c); warn != nil {
		t.Fatalf("ReadConfig: %v", warn)
	}
	if c.Name != "default" || c.Count != 5 {
		t.Fatalf("config = %+v", c)
	}
}

func TestReadConfigUnknownUserKey(t *testing.T) {
	userConfig(t, map[string]string{"test.yml": "colour: red\n"})
	var c testConfig
	if warn := gioui.ReadConfig([]byte("name: default\n"), "test.yml", &c); warn == nil {
		t.Fatalf("unknown key in the user's file did not warn")
	}
	if c.Name != "default" {
		t.Fatalf("defaults lost: %+v", c)
	}
}

func TestReadConfigEmptyUserFile(t *testing.T) {
	userConfig(t, map[string]string{"test.yml": ""})
	var c testConfig
	if warn := gioui.ReadConfig([]byte("name: default\n"), "test.yml", &c); warn != nil {
		t.Fatalf("empty user file warned: %v", warn)
	}
}

func TestReadConfigBadDefaultsPanic(t *testing.T) {
	userConfig(t, nil)
	defer func() {
		if recover() == nil {
			t.Fatalf("bad defaults did not panic")
		}
	}()
	var c testConfig
	gioui.ReadConfig([]byte("unknown: 1\n"), "test.yml", &c)
}
