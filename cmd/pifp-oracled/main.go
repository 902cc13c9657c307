// pifp-oracled fetches a milestone proof artifact, hashes it, and submits the
// verify-and-release call that settles a project's escrow. With --dry-run it
// prints the hash instead of submitting.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"pifp_protocol/backend/logging"
	"pifp_protocol/backend/oracle"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	projectID := flag.Uint64("project-id", 0, "project to verify")
	proofCID := flag.String("proof-cid", "", "IPFS CID of the proof artifact")
	dryRun := flag.Bool("dry-run", false, "hash the proof but do not submit")
	flag.Parse()

	cfg, err := oracle.LoadConfig(*configPath)
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logging.Setup("pifp-oracled", cfg.Environment)

	if *projectID == 0 || *proofCID == "" {
		log.Error("both --project-id and --proof-cid are required")
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	verifier := oracle.NewVerifier(cfg.Gateway)
	hash, err := verifier.FetchAndHashProof(ctx, *proofCID)
	if err != nil {
		log.Error("hashing proof failed", "cid", *proofCID, "err", err)
		os.Exit(1)
	}
	log.Info("proof hashed", "project_id", *projectID, "cid", *proofCID, "hash", hash)

	if *dryRun {
		fmt.Println(hash)
		return
	}

	submitter := oracle.NewNodeSubmitter(cfg.NodeURL, cfg.ContractID)
	if err := submitter.SubmitVerification(ctx, *projectID, hash); err != nil {
		log.Error("submission failed", "project_id", *projectID, "err", err)
		os.Exit(1)
	}
	log.Info("verification submitted", "project_id", *projectID)
}
