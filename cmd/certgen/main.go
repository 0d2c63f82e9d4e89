// Command certgen writes a self-signed certificate authority and a server
// certificate signed by it, for the cert_file and key_file server options.
package main

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const organization = "puzzleboard"

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

type options struct {
	dir   string
	hosts []string
	years int
	bits  int
}

func parseFlags() (options, error) {
	var opts options
	var hosts string
	flag.StringVar(&opts.dir, "dir", ".", "output directory")
	flag.StringVar(&hosts, "hosts", "", "comma separated ips and dns names, loopback when empty")
	flag.IntVar(&opts.years, "years", 10, "validity in years")
	flag.IntVar(&opts.bits, "bits", 4096, "rsa key size")
	flag.Parse()

	if opts.years < 1 {
		return options{}, errors.New("years must be positive")
	}
	for _, h := range strings.Split(hosts, ",") {
		if h = strings.TrimSpace(h); h != "" {
			opts.hosts = append(opts.hosts, h)
		}
	}
	return opts, nil
}

func run() error {
	opts, err := parseFlags()
	if err != nil {
		return err
	}
	certPath := filepath.Join(opts.dir, "cert.pem")
	keyPath := filepath.Join(opts.dir, "key.pem")
	caPath := filepath.Join(opts.dir, "ca.pem")
	for _, p := range []string{certPath, keyPath, caPath} {
		if exists(p) {
			return fmt.Errorf("%s exists", p)
		}
	}

	now := time.Now()
	ca := &x509.Certificate{
		SerialNumber:          randomSerial(),
		Subject:               pkix.Name{Organization: []string{organization}, CommonName: organization + " CA"},
		NotBefore:             now,
		NotAfter:              now.AddDate(opts.years, 0, 0),
		IsCA:                  true,
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		BasicConstraintsValid: true,
	}
	caKey, err := rsa.GenerateKey(rand.Reader, opts.bits)
	if err != nil {
		return err
	}
	caDER, err := x509.CreateCertificate(rand.Reader, ca, ca, &caKey.PublicKey, caKey)
	if err != nil {
		return err
	}

	cert := &x509.Certificate{
		SerialNumber: randomSerial(),
		Subject:      pkix.Name{Organization: []string{organization}, CommonName: organization},
		NotBefore:    now,
		NotAfter:     now.AddDate(opts.years, 0, 0),
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		KeyUsage:     x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
	}
	cert.IPAddresses, cert.DNSNames = splitHosts(opts.hosts)

	certKey, err := rsa.GenerateKey(rand.Reader, opts.bits)
	if err != nil {
		return err
	}
	certDER, err := x509.CreateCertificate(rand.Reader, cert, ca, &certKey.PublicKey, caKey)
	if err != nil {
		return err
	}

	if err := writePEM(caPath, "CERTIFICATE", caDER); err != nil {
		return err
	}
	if err := writePEM(certPath, "CERTIFICATE", certDER); err != nil {
		return err
	}
	if err := writePEM(keyPath, "RSA PRIVATE KEY", x509.MarshalPKCS1PrivateKey(certKey)); err != nil {
		return err
	}
	fmt.Printf("wrote %s, %s and %s\n", caPath, certPath, keyPath)
	return nil
}

// splitHosts separates ip addresses from dns names. No hosts means loopback.
func splitHosts(hosts []string) ([]net.IP, []string) {
	if len(hosts) == 0 {
		return []net.IP{net.IPv4(127, 0, 0, 1), net.IPv6loopback}, []string{"localhost"}
	}
	var ips []net.IP
	var names []string
	for _, h := range hosts {
		if ip := net.ParseIP(h); ip != nil {
			ips = append(ips, ip)
			continue
		}
		names = append(names, h)
	}
	return ips, names
}

func writePEM(path, blockType string, der []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return err
	}
	if err := pem.Encode(f, &pem.Block{Type: blockType, Bytes: der}); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}

func randomSerial() *big.Int {
	limit := new(big.Int).Lsh(big.NewInt(1), 128)
	i, err := rand.Int(rand.Reader, limit)
	if err != nil {
		panic(err)
	}
	return i
}
