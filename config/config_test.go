package config

import (
	"os"
	"reflect"
	"testing"
)

func TestMain(m *testing.M) {
	invalidYamlPath := "./invalid_config.yaml"
	invalidContent := []byte("invalid: [unclosed_list\nanother: value")

	// Create invalid YAML file
	if err := os.WriteFile(invalidYamlPath, invalidContent, 0600); err != nil {
		panic("failed to create invalid YAML file: " + err.Error())
	}

	// Run tests
	code := m.Run()

	// Clean up
	os.Remove(invalidYamlPath)

	os.Exit(code)
}

func TestReadLocalConfig(t *testing.T) {
	type args struct {
		configPath string
	}
	tests := []struct {
		name    string
		args    args
		want    *ServiceConfig
		wantErr bool
	}{
		{
			name: "successful",
			args: args{
				configPath: "../res/config.yaml",
			},
			want: &ServiceConfig{
				ServiceName:   "task_manager",
				LogLevel:      "info",
				AdminUsername: "admin",
				Storage: Storage{
					UserFile:         "user.txt",
					TaskFile:         "tasks.txt",
					TaskOverviewFile: "task_overview.txt",
					UserOverviewFile: "user_overview.txt",
				},
				Login: Login{
					AttemptsPerSecond: 1,
					Burst:             3,
				},
			},
			wantErr: false,
		},
		{
			name: "file does not exist",
			args: args{
				configPath: "",
			},
			want:    nil,
			wantErr: true,
		},
		{
			name: "invalid YAML file",
			args: args{
				configPath: "./invalid_config.yaml",
			},
			want:    nil,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadLocalConfig(tt.args.configPath)
			if (err != nil) != tt.wantErr {
				t.Errorf("ReadLocalConfig() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadLocalConfig() = %v, want %v", got, tt.want)
			}
		})
	}
}
