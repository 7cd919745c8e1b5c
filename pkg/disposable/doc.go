// Package disposable recognises throwaway mail providers.
//
// Default returns a list compiled into the binary. Projects with their own
// blocklist load it from YAML:
//
//	list, err := disposable.LoadFile("/etc/app/disposable.yaml")
//	if err != nil {
//	    return err
//	}
//	list = list.Merge(disposable.Default())
//
// A List satisfies validator.DisposableSource and matches parent domains, so
// an entry for mailinator.com also covers eu.mailinator.com.
package disposable
