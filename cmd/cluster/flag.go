package cluster

import (
	"github.com/giantswarm/microerror"
	"github.com/spf13/cobra"

	"github.com/camunda-community-hub/consolectl/pkg/key"
)

const (
	flagChannel     = "channel"
	flagGeneration  = "generation"
	flagName        = "name"
	flagPlan        = "plan"
	flagRegion      = "region"
	flagWait        = "wait"
	flagWaitRetries = "wait-retries"
)

type flag struct {
	Channel     string
	Generation  string
	Name        string
	Plan        string
	Region      string
	Wait        bool
	WaitRetries uint64
}

func (f *flag) InitCreate(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Channel, flagChannel, "", `The release channel. Defaults to the default channel.`)
	cmd.Flags().StringVarP(&f.Generation, flagGeneration, "g", "", `The generation. Defaults to the channel's default generation, use "`+key.GenerationLatest+`" for the newest one.`)
	cmd.Flags().StringVarP(&f.Name, flagName, "n", "", `The name of the cluster.`)
	cmd.Flags().StringVar(&f.Plan, flagPlan, "", `The cluster plan type.`)
	cmd.Flags().StringVarP(&f.Region, flagRegion, "r", "", `The region. Defaults to the region of the plan type.`)
	f.initWait(cmd, "healthy")
}

func (f *flag) InitDelete(cmd *cobra.Command) {
	f.initWait(cmd, "gone")
}

func (f *flag) initWait(cmd *cobra.Command, state string) {
	cmd.Flags().BoolVarP(&f.Wait, flagWait, "w", false, `Wait until the cluster is `+state+`. Cancellation takes effect at the next check, not during the interval between checks.`)
	cmd.Flags().Uint64Var(&f.WaitRetries, flagWaitRetries, 90, `How often to check the cluster when waiting.`)
}

func (f *flag) ValidateCreate() error {
	if f.Name == "" {
		return microerror.Maskf(invalidFlagError, "--%s is required", flagName)
	}
	if f.Plan == "" {
		return microerror.Maskf(invalidFlagError, "--%s is required", flagPlan)
	}

	return f.validateWait()
}

func (f *flag) ValidateDelete() error {
	return f.validateWait()
}

func (f *flag) validateWait() error {
	if f.Wait && f.WaitRetries == 0 {
		return microerror.Maskf(invalidFlagError, "--%s must be bigger than 0 when --%s is set", flagWaitRetries, flagWait)
	}

	return nil
}
