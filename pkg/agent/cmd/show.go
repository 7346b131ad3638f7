package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/scoir/canis-exchange/pkg/framework"
)

const redacted = "<redacted>"

var showCmd = &cobra.Command{
	Use:   "config",
	Short: "Prints the resolved agent configuration",
	Long:  `Prints the agent and ledger configuration after files, environment and flags are merged. Seeds are redacted.`,
	Run:   runShow,
}

func runShow(_ *cobra.Command, _ []string) {
	ac, err := ctx.AgentConfig()
	if err != nil {
		logrus.WithError(err).Fatal("invalid agent config")
	}

	lc, err := ctx.LedgerConfig()
	if err != nil {
		logrus.WithError(err).Fatal("invalid ledger config")
	}

	d, err := render(ac, lc)
	if err != nil {
		logrus.WithError(err).Fatal("unable to render config")
	}

	fmt.Print(string(d))
}

type relationshipView struct {
	TheirDID            string `yaml:"theirDID"`
	TheirVerKey         string `yaml:"theirVerKey"`
	TheirEndpointDID    string `yaml:"theirEndpointDID"`
	TheirEndpointVerKey string `yaml:"theirEndpointVerKey"`
	MyDID               string `yaml:"myDID"`
	MySeed              string `yaml:"mySeed,omitempty"`
}

type schemaView struct {
	Name       string   `yaml:"name"`
	Version    string   `yaml:"version"`
	Attributes []string `yaml:"attributes"`
	Tag        string   `yaml:"tag,omitempty"`
}

type configView struct {
	Agent struct {
		EndpointDID     string              `yaml:"endpointDID"`
		EndpointSeed    string              `yaml:"endpointSeed,omitempty"`
		AutoAccept      bool                `yaml:"autoAccept"`
		PendingTTL      string              `yaml:"pendingTTL"`
		JanitorInterval string              `yaml:"janitorInterval"`
		Relationships   []*relationshipView `yaml:"relationships"`
	} `yaml:"agent"`
	Ledger struct {
		Backend   string        `yaml:"backend"`
		CacheSize int           `yaml:"cacheSize"`
		CacheTTL  string        `yaml:"cacheTTL"`
		Schemas   []*schemaView `yaml:"schemas"`
	} `yaml:"ledger"`
}

func render(ac *framework.AgentConfig, lc *framework.LedgerConfig) ([]byte, error) {
	v := &configView{}
	v.Agent.EndpointDID = ac.EndpointDID
	v.Agent.EndpointSeed = redact(ac.EndpointSeed)
	v.Agent.AutoAccept = ac.AutoAccept
	v.Agent.PendingTTL = ac.PendingTTL.String()
	v.Agent.JanitorInterval = ac.JanitorInterval.String()
	for _, rel := range ac.Relationships {
		v.Agent.Relationships = append(v.Agent.Relationships, &relationshipView{
			TheirDID:            rel.TheirDID,
			TheirVerKey:         rel.TheirVerKey,
			TheirEndpointDID:    rel.TheirEndpointDID,
			TheirEndpointVerKey: rel.TheirEndpointVerKey,
			MyDID:               rel.MyDID,
			MySeed:              redact(rel.MySeed),
		})
	}

	v.Ledger.Backend = lc.Backend
	v.Ledger.CacheSize = lc.CacheSize
	v.Ledger.CacheTTL = lc.CacheTTL.String()
	for _, s := range lc.Schemas {
		v.Ledger.Schemas = append(v.Ledger.Schemas, &schemaView{
			Name:       s.Name,
			Version:    s.Version,
			Attributes: s.Attributes,
			Tag:        s.Tag,
		})
	}

	return yaml.Marshal(v)
}

func redact(seed string) string {
	if seed == "" {
		return ""
	}

	return redacted
}

func init() {
	rootCmd.AddCommand(showCmd)
}
