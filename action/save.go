package action

import (
	"github.com/sagarc03/swiftcli"
	"github.com/sagarc03/swiftcli/credentials"
)

// Save writes creds to the store at storePath. Only explicit values count;
// an existing store is never merged in. Nothing is written when a field is
// missing.
func (r *Runner) Save(creds swiftcli.Credentials, storePath string) (*SaveResult, error) {
	if err := credentials.Save(storePath, creds); err != nil {
		return nil, err
	}

	r.logger.Debug("saved credentials", "path", storePath, "user", creds.User)
	result := &SaveResult{
		Path:    storePath,
		User:    creds.User,
		AuthURL: creds.AuthURL,
	}
	return result, r.formatter.FormatSave(r.stdout, result)
}
